package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cornerstore-backend/internal/audit"
	"cornerstore-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ParseDay accepts YYYY-MM-DD or an RFC 3339 timestamp and returns midnight UTC of that
// calendar date.
func ParseDay(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, badRequest("orderDate must be formatted as YYYY-MM-DD.")
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func preloadOrder(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Cashier").
		Preload("OrderProducts", func(db *gorm.DB) *gorm.DB { return db.Order("order_products.product_id") }).
		Preload("OrderProducts.Product").
		Preload("OrderProducts.Product.Category")
}

// ListOrders returns all orders, or only those paid on day when day is set. Unpaid orders
// never match a date filter.
func (s *Service) ListOrders(ctx context.Context, day *time.Time) (_ []OrderDetail, err error) {
	ctx, span := s.start(ctx, "ListOrders")
	defer func() { finish(span, err) }()

	dbq := preloadOrder(s.db.WithContext(ctx))
	if day != nil {
		start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
		dbq = dbq.Where("paid_on_date >= ? AND paid_on_date < ?", start, start.Add(24*time.Hour))
	}

	var orders []models.Order
	if err = dbq.Order("orders.id").Find(&orders).Error; err != nil {
		return nil, err
	}

	res := make([]OrderDetail, 0, len(orders))
	for _, o := range orders {
		res = append(res, orderDetail(o))
	}
	return res, nil
}

func (s *Service) GetOrder(ctx context.Context, id int64) (_ *OrderDetail, err error) {
	ctx, span := s.start(ctx, "GetOrder")
	defer func() { finish(span, err) }()

	d, err := loadOrder(s.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// CreateOrder stores the order and its line items in one transaction. The cashier must
// exist (404) and every product must exist (400); nothing is written otherwise.
func (s *Service) CreateOrder(ctx context.Context, in OrderInput) (_ *OrderDetail, err error) {
	ctx, span := s.start(ctx, "CreateOrder")
	defer func() { finish(span, err) }()

	ids := make([]int64, 0, len(in.Products))
	seen := make(map[int64]struct{}, len(in.Products))
	for _, line := range in.Products {
		if line.Quantity < 1 {
			return nil, badRequest("Quantity must be at least 1.")
		}
		if _, dup := seen[line.ProductID]; dup {
			return nil, badRequest("Product %d appears more than once in the order.", line.ProductID)
		}
		seen[line.ProductID] = struct{}{}
		ids = append(ids, line.ProductID)
	}

	var view OrderDetail
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireReference(tx, KindCashier, in.CashierID); err != nil {
			return err
		}
		if err := resolveProducts(tx, ids); err != nil {
			return err
		}

		o := models.Order{CashierID: uint(in.CashierID)}
		if in.PaidOnDate != nil {
			paid := in.PaidOnDate.UTC()
			o.PaidOnDate = &paid
		}
		if err := tx.Omit(clause.Associations).Create(&o).Error; err != nil {
			return err
		}

		if len(in.Products) > 0 {
			lines := make([]models.OrderProduct, 0, len(in.Products))
			for _, line := range in.Products {
				lines = append(lines, models.OrderProduct{
					OrderID:   o.ID,
					ProductID: uint(line.ProductID),
					Quantity:  line.Quantity,
				})
			}
			if err := tx.Omit("Product").Create(&lines).Error; err != nil {
				return err
			}
		}

		d, err := loadOrder(tx, int64(o.ID))
		if err != nil {
			return err
		}
		view = d
		return audit.WriteLog(tx, audit.LogOptions{
			EntityType:  "order",
			EntityID:    o.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("Order created for cashier %s, total %s", view.Cashier.FullName, view.Total),
			After:       view,
		})
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// DeleteOrder removes the order together with its line items.
func (s *Service) DeleteOrder(ctx context.Context, id int64) (err error) {
	ctx, span := s.start(ctx, "DeleteOrder")
	defer func() { finish(span, err) }()

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		before, err := loadOrder(tx, id)
		if err != nil {
			return err
		}

		if err := tx.Where("order_id = ?", id).Delete(&models.OrderProduct{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Order{}, id).Error; err != nil {
			return err
		}

		return audit.WriteLog(tx, audit.LogOptions{
			EntityType:  "order",
			EntityID:    before.ID,
			Action:      models.AuditActionDelete,
			Description: fmt.Sprintf("Order %d deleted", before.ID),
			Before:      before,
		})
	})
}

func loadOrder(tx *gorm.DB, id int64) (OrderDetail, error) {
	var o models.Order
	err := preloadOrder(tx).First(&o, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return OrderDetail{}, notFound(KindOrder, id)
	}
	if err != nil {
		return OrderDetail{}, err
	}
	return orderDetail(o), nil
}
