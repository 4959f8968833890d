// Package store validates and persists cashiers, categories, products and orders, and shapes
// the nested read projections the API returns. Every relation a read needs is loaded with an
// explicit preload or join; order totals are computed from the loaded rows.
package store

import (
	"context"
	"time"

	"cornerstore-backend/internal/telemetry"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

type Service struct {
	db                   *gorm.DB
	strictProductUpdates bool
}

type Option func(*Service)

// WithStrictProductUpdates applies the create-time field rules to product updates as well.
func WithStrictProductUpdates(strict bool) Option {
	return func(s *Service) { s.strictProductUpdates = strict }
}

func New(db *gorm.DB, opts ...Option) *Service {
	s := &Service{db: db}
	for _, o := range opts {
		o(s)
	}
	return s
}

type CashierInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type CategoryInput struct {
	CategoryName string `json:"categoryName"`
}

type ProductInput struct {
	ProductName string          `json:"productName"`
	Price       decimal.Decimal `json:"price"`
	Brand       string          `json:"brand"`
	CategoryID  int64           `json:"categoryId"`
}

type OrderInput struct {
	CashierID  int64            `json:"cashierId"`
	PaidOnDate *time.Time       `json:"paidOnDate"`
	Products   []OrderLineInput `json:"products"`
}

type OrderLineInput struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

func (s *Service) start(ctx context.Context, name string) (context.Context, trace.Span) {
	return otel.Tracer(telemetry.InstrumentationName).Start(ctx, "store."+name)
}

func finish(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
