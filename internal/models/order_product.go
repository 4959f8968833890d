package models

// OrderProduct is an order line item, keyed by (order_id, product_id).
type OrderProduct struct {
	OrderID   uint `gorm:"primaryKey;autoIncrement:false"`
	ProductID uint `gorm:"primaryKey;autoIncrement:false;index"`
	Product   Product
	Quantity  int `gorm:"not null"`
}
