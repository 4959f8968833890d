package database

import (
	"time"

	"cornerstore-backend/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Seed loads the demo store (5 cashiers, categories, products and orders) into empty tables.
// Paid-on dates are relative to now; the fifth order is unpaid. Ids are assigned by the
// database so serial sequences stay consistent on postgres.
func Seed(db *gorm.DB, now time.Time) error {
	var count int64
	if err := db.Model(&models.Cashier{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		cashiers := []models.Cashier{
			{FirstName: "John", LastName: "Doe"},
			{FirstName: "Jane", LastName: "Smith"},
			{FirstName: "Michael", LastName: "Brown"},
			{FirstName: "Sarah", LastName: "Johnson"},
			{FirstName: "Emily", LastName: "Davis"},
		}
		if err := tx.Create(&cashiers).Error; err != nil {
			return err
		}

		categories := []models.Category{
			{CategoryName: "Beverages"},
			{CategoryName: "Snacks"},
			{CategoryName: "Dairy"},
			{CategoryName: "Bakery"},
			{CategoryName: "Frozen Foods"},
		}
		if err := tx.Create(&categories).Error; err != nil {
			return err
		}

		products := []models.Product{
			{ProductName: "Cola", Price: decimal.RequireFromString("1.99"), Brand: "Brand A", CategoryID: categories[0].ID},
			{ProductName: "Orange Juice", Price: decimal.RequireFromString("2.99"), Brand: "Brand B", CategoryID: categories[0].ID},
			{ProductName: "Chips", Price: decimal.RequireFromString("2.49"), Brand: "Brand C", CategoryID: categories[1].ID},
			{ProductName: "Cheese", Price: decimal.RequireFromString("3.49"), Brand: "Brand D", CategoryID: categories[2].ID},
			{ProductName: "Ice Cream", Price: decimal.RequireFromString("4.99"), Brand: "Brand E", CategoryID: categories[4].ID},
		}
		if err := tx.Omit("Category").Create(&products).Error; err != nil {
			return err
		}

		day := func(offset int) *time.Time {
			t := now.AddDate(0, 0, offset).UTC()
			return &t
		}
		orders := []models.Order{
			{CashierID: cashiers[0].ID, PaidOnDate: day(-3)},
			{CashierID: cashiers[1].ID, PaidOnDate: day(-2)},
			{CashierID: cashiers[2].ID, PaidOnDate: day(-1)},
			{CashierID: cashiers[3].ID, PaidOnDate: day(0)},
			{CashierID: cashiers[4].ID},
		}
		if err := tx.Omit("Cashier", "OrderProducts").Create(&orders).Error; err != nil {
			return err
		}

		lines := []models.OrderProduct{
			{OrderID: orders[0].ID, ProductID: products[0].ID, Quantity: 2},
			{OrderID: orders[0].ID, ProductID: products[2].ID, Quantity: 1},
			{OrderID: orders[1].ID, ProductID: products[1].ID, Quantity: 3},
			{OrderID: orders[2].ID, ProductID: products[3].ID, Quantity: 1},
			{OrderID: orders[3].ID, ProductID: products[4].ID, Quantity: 2},
		}
		return tx.Omit("Product").Create(&lines).Error
	})
}
