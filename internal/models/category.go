package models

import "time"

type Category struct {
	ID           uint   `gorm:"primaryKey"`
	CategoryName string `gorm:"size:100;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
