package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cornerstore-backend/internal/audit"
	"cornerstore-backend/internal/models"

	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ListProducts returns every product with its category name. A non-blank search keeps the
// products whose name or category name contains it, ignoring case.
func (s *Service) ListProducts(ctx context.Context, search string) (_ []ProductView, err error) {
	ctx, span := s.start(ctx, "ListProducts")
	defer func() { finish(span, err) }()

	dbq := s.db.WithContext(ctx).
		Select("products.*").
		Joins("JOIN categories ON categories.id = products.category_id").
		Preload("Category")

	if search = strings.TrimSpace(search); search != "" {
		like := "%" + likeEscaper.Replace(strings.ToLower(search)) + "%"
		dbq = dbq.Where(`LOWER(products.product_name) LIKE ? ESCAPE '\' OR LOWER(categories.category_name) LIKE ? ESCAPE '\'`, like, like)
	}

	var products []models.Product
	if err = dbq.Order("products.id").Find(&products).Error; err != nil {
		return nil, err
	}

	res := make([]ProductView, 0, len(products))
	for _, p := range products {
		res = append(res, productView(p))
	}
	return res, nil
}

func (s *Service) GetProduct(ctx context.Context, id int64) (_ *ProductView, err error) {
	ctx, span := s.start(ctx, "GetProduct")
	defer func() { finish(span, err) }()

	v, err := loadProduct(s.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *Service) CreateProduct(ctx context.Context, in ProductInput) (_ *ProductView, err error) {
	ctx, span := s.start(ctx, "CreateProduct")
	defer func() { finish(span, err) }()

	in = trimProduct(in)
	if err = validateProduct(in); err != nil {
		return nil, err
	}

	var view ProductView
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireReference(tx, KindCategory, in.CategoryID); err != nil {
			return err
		}

		p := models.Product{
			ProductName: in.ProductName,
			Price:       in.Price,
			Brand:       in.Brand,
			CategoryID:  uint(in.CategoryID),
		}
		if err := tx.Omit("Category").Create(&p).Error; err != nil {
			return err
		}

		v, err := loadProduct(tx, int64(p.ID))
		if err != nil {
			return err
		}
		view = v
		return audit.WriteLog(tx, audit.LogOptions{
			EntityType:  "product",
			EntityID:    p.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("Product created: %s", p.ProductName),
			After:       view,
		})
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// UpdateProduct rewrites name, price, brand and category. Field contents are only checked
// when the service runs with strict product updates; the category must exist either way.
func (s *Service) UpdateProduct(ctx context.Context, id int64, in ProductInput) (_ *ProductView, err error) {
	ctx, span := s.start(ctx, "UpdateProduct")
	defer func() { finish(span, err) }()

	var view ProductView
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		before, err := loadProduct(tx, id)
		if err != nil {
			return err
		}

		if s.strictProductUpdates {
			in = trimProduct(in)
			if err := validateProduct(in); err != nil {
				return err
			}
		}
		if err := requireReference(tx, KindCategory, in.CategoryID); err != nil {
			return err
		}

		err = tx.Model(&models.Product{}).Where("id = ?", id).Updates(map[string]any{
			"product_name": in.ProductName,
			"price":        in.Price,
			"brand":        in.Brand,
			"category_id":  in.CategoryID,
		}).Error
		if err != nil {
			return err
		}

		if view, err = loadProduct(tx, id); err != nil {
			return err
		}
		return audit.WriteLog(tx, audit.LogOptions{
			EntityType:  "product",
			EntityID:    view.ID,
			Action:      models.AuditActionUpdate,
			Description: fmt.Sprintf("Product updated: %s", view.ProductName),
			Before:      before,
			After:       view,
		})
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func loadProduct(tx *gorm.DB, id int64) (ProductView, error) {
	var p models.Product
	err := tx.Preload("Category").First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ProductView{}, notFound(KindProduct, id)
	}
	if err != nil {
		return ProductView{}, err
	}
	return productView(p), nil
}

func trimProduct(in ProductInput) ProductInput {
	in.ProductName = strings.TrimSpace(in.ProductName)
	in.Brand = strings.TrimSpace(in.Brand)
	return in
}

func validateProduct(in ProductInput) error {
	if in.ProductName == "" || in.Brand == "" || !in.Price.IsPositive() || in.CategoryID <= 0 {
		return badRequest("Invalid product data. Please check the input fields.")
	}
	return nil
}
