package models

import "time"

// Order: PaidOnDate nil means the order has not been paid yet.
type Order struct {
	ID            uint       `gorm:"primaryKey"`
	CashierID     uint       `gorm:"index;not null"`
	Cashier       Cashier
	PaidOnDate    *time.Time `gorm:"index"`
	OrderProducts []OrderProduct
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
