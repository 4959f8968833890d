package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          uint            `gorm:"primaryKey"`
	ProductName string          `gorm:"size:100;not null"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Brand       string          `gorm:"size:100;not null"`
	CategoryID  uint            `gorm:"index;not null"`
	Category    Category
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
