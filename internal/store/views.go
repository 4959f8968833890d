package store

import (
	"time"

	"cornerstore-backend/internal/models"
	"cornerstore-backend/internal/pricing"
)

type CashierView struct {
	ID        uint   `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	FullName  string `json:"fullName"`
}

type CashierDetail struct {
	CashierView
	Orders []CashierOrder `json:"orders"`
}

type CashierOrder struct {
	ID         uint             `json:"id"`
	PaidOnDate *time.Time       `json:"paidOnDate"`
	Total      pricing.Money    `json:"total"`
	Products   []OrderedProduct `json:"products"`
}

type OrderedProduct struct {
	ID          uint          `json:"id"`
	ProductName string        `json:"productName"`
	Brand       string        `json:"brand"`
	Price       pricing.Money `json:"price"`
	Category    string        `json:"category"`
	Quantity    int           `json:"quantity"`
}

type CategoryView struct {
	ID           uint   `json:"id"`
	CategoryName string `json:"categoryName"`
}

type ProductView struct {
	ID          uint          `json:"id"`
	ProductName string        `json:"productName"`
	Price       pricing.Money `json:"price"`
	Brand       string        `json:"brand"`
	CategoryID  uint          `json:"categoryId"`
	Category    string        `json:"category"`
}

type OrderDetail struct {
	ID            uint           `json:"id"`
	CashierID     uint           `json:"cashierId"`
	Cashier       CashierView    `json:"cashier"`
	PaidOnDate    *time.Time     `json:"paidOnDate"`
	Total         pricing.Money  `json:"total"`
	OrderProducts []LineItemView `json:"orderProducts"`
}

type LineItemView struct {
	ProductID uint          `json:"productId"`
	Quantity  int           `json:"quantity"`
	Subtotal  pricing.Money `json:"subtotal"`
	Product   ProductView   `json:"product"`
}

func cashierView(c models.Cashier) CashierView {
	return CashierView{ID: c.ID, FirstName: c.FirstName, LastName: c.LastName, FullName: c.FullName()}
}

func categoryView(c models.Category) CategoryView {
	return CategoryView{ID: c.ID, CategoryName: c.CategoryName}
}

func productView(p models.Product) ProductView {
	return ProductView{
		ID:          p.ID,
		ProductName: p.ProductName,
		Price:       pricing.NewMoney(p.Price),
		Brand:       p.Brand,
		CategoryID:  p.CategoryID,
		Category:    p.Category.CategoryName,
	}
}

// orderTotal needs OrderProducts and their Product rows loaded.
func orderTotal(lines []models.OrderProduct) pricing.Money {
	items := make([]pricing.LineItem, 0, len(lines))
	for _, op := range lines {
		items = append(items, pricing.LineItem{Quantity: op.Quantity, UnitPrice: op.Product.Price})
	}
	return pricing.NewMoney(pricing.ComputeTotal(items))
}

func orderDetail(o models.Order) OrderDetail {
	lines := make([]LineItemView, 0, len(o.OrderProducts))
	for _, op := range o.OrderProducts {
		lines = append(lines, LineItemView{
			ProductID: op.ProductID,
			Quantity:  op.Quantity,
			Subtotal:  pricing.NewMoney(pricing.ComputeTotal([]pricing.LineItem{{Quantity: op.Quantity, UnitPrice: op.Product.Price}})),
			Product:   productView(op.Product),
		})
	}
	return OrderDetail{
		ID:            o.ID,
		CashierID:     o.CashierID,
		Cashier:       cashierView(o.Cashier),
		PaidOnDate:    o.PaidOnDate,
		Total:         orderTotal(o.OrderProducts),
		OrderProducts: lines,
	}
}

func cashierDetail(c models.Cashier) CashierDetail {
	orders := make([]CashierOrder, 0, len(c.Orders))
	for _, o := range c.Orders {
		products := make([]OrderedProduct, 0, len(o.OrderProducts))
		for _, op := range o.OrderProducts {
			products = append(products, OrderedProduct{
				ID:          op.Product.ID,
				ProductName: op.Product.ProductName,
				Brand:       op.Product.Brand,
				Price:       pricing.NewMoney(op.Product.Price),
				Category:    op.Product.Category.CategoryName,
				Quantity:    op.Quantity,
			})
		}
		orders = append(orders, CashierOrder{
			ID:         o.ID,
			PaidOnDate: o.PaidOnDate,
			Total:      orderTotal(o.OrderProducts),
			Products:   products,
		})
	}
	return CashierDetail{CashierView: cashierView(c), Orders: orders}
}
