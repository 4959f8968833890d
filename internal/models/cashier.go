package models

import "time"

type Cashier struct {
	ID        uint   `gorm:"primaryKey"`
	FirstName string `gorm:"size:100;not null"`
	LastName  string `gorm:"size:100;not null"`
	Orders    []Order
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FullName is not stored; it is always "first last".
func (c Cashier) FullName() string {
	return c.FirstName + " " + c.LastName
}
