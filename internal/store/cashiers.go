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

// GetCashier returns the cashier with all orders, their line items and products.
func (s *Service) GetCashier(ctx context.Context, id int64) (_ *CashierDetail, err error) {
	ctx, span := s.start(ctx, "GetCashier")
	defer func() { finish(span, err) }()

	var c models.Cashier
	err = s.db.WithContext(ctx).
		Preload("Orders", func(db *gorm.DB) *gorm.DB { return db.Order("orders.id") }).
		Preload("Orders.OrderProducts", func(db *gorm.DB) *gorm.DB { return db.Order("order_products.product_id") }).
		Preload("Orders.OrderProducts.Product").
		Preload("Orders.OrderProducts.Product.Category").
		First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound(KindCashier, id)
	}
	if err != nil {
		return nil, err
	}

	d := cashierDetail(c)
	return &d, nil
}

func (s *Service) CreateCashier(ctx context.Context, in CashierInput) (_ *CashierView, err error) {
	ctx, span := s.start(ctx, "CreateCashier")
	defer func() { finish(span, err) }()

	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	if in.FirstName == "" || in.LastName == "" {
		return nil, badRequest("FirstName and LastName are required.")
	}

	var view CashierView
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		c := models.Cashier{FirstName: in.FirstName, LastName: in.LastName}
		if err := tx.Create(&c).Error; err != nil {
			return err
		}
		view = cashierView(c)
		return audit.WriteLog(tx, audit.LogOptions{
			EntityType:  "cashier",
			EntityID:    c.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("Cashier created: %s", view.FullName),
			After:       view,
		})
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}
