package store

import (
	"context"
	"testing"

	"cornerstore-backend/internal/audit"
	"cornerstore-backend/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(products []ProductView) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ProductName)
	}
	return out
}

func TestListProductsSearch(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateProduct(ctx, ProductInput{
		ProductName: "Chocolate Bar",
		Price:       decimal.RequireFromString("1.25"),
		Brand:       "Brand F",
		CategoryID:  snacks,
	})
	require.NoError(t, err)

	all, err := svc.ListProducts(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Cola", "Orange Juice", "Chips", "Cheese", "Ice Cream", "Chocolate Bar"}, names(all))
	assert.Equal(t, "Beverages", all[0].Category)
	assert.Equal(t, "1.99", all[0].Price.String())

	for _, tc := range []struct {
		search string
		want   []string
	}{
		{"choc", []string{"Chocolate Bar"}},
		{"  CHOC ", []string{"Chocolate Bar"}},
		{"bev", []string{"Cola", "Orange Juice"}},
		{"snack", []string{"Chips", "Chocolate Bar"}},
		{"%", []string{}},
		{"_", []string{}},
		{"nothing", []string{}},
	} {
		got, err := svc.ListProducts(ctx, tc.search)
		require.NoError(t, err)
		assert.Equal(t, tc.want, names(got), "search %q", tc.search)
	}
}

func TestGetProduct(t *testing.T) {
	svc, _ := newTestService(t)

	p, err := svc.GetProduct(context.Background(), chipsID)
	require.NoError(t, err)
	assert.Equal(t, "Chips", p.ProductName)
	assert.Equal(t, "2.49", p.Price.String())
	assert.Equal(t, uint(snacks), p.CategoryID)
	assert.Equal(t, "Snacks", p.Category)

	_, err = svc.GetProduct(context.Background(), 77)
	assert.EqualError(t, err, "Product with ID 77 not found.")
}

func TestCreateProduct(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	p, err := svc.CreateProduct(ctx, ProductInput{
		ProductName: " Yogurt ",
		Price:       decimal.RequireFromString("0.89"),
		Brand:       "Brand G",
		CategoryID:  dairy,
	})
	require.NoError(t, err)
	assert.Equal(t, "Yogurt", p.ProductName)
	assert.Equal(t, "0.89", p.Price.String())
	assert.Equal(t, "Dairy", p.Category)

	logs, err := audit.List(ctx, db, audit.Filter{EntityType: "product", EntityID: p.ID})
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, models.AuditActionCreate, logs[0].Action)
}

func TestCreateProductRejected(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	valid := ProductInput{ProductName: "Water", Price: decimal.RequireFromString("0.99"), Brand: "Brand H", CategoryID: 1}

	for name, mutate := range map[string]func(*ProductInput){
		"blank name":  func(in *ProductInput) { in.ProductName = "  " },
		"blank brand": func(in *ProductInput) { in.Brand = "" },
		"zero price":  func(in *ProductInput) { in.Price = decimal.Zero },
		"negative":    func(in *ProductInput) { in.Price = decimal.RequireFromString("-1") },
		"no category": func(in *ProductInput) { in.CategoryID = 0 },
	} {
		in := valid
		mutate(&in)
		_, err := svc.CreateProduct(ctx, in)
		require.ErrorIs(t, err, ErrBadRequest, name)
		assert.EqualError(t, err, "Invalid product data. Please check the input fields.", name)
	}

	in := valid
	in.CategoryID = 99
	_, err := svc.CreateProduct(ctx, in)
	require.ErrorIs(t, err, ErrNotFound)
	assert.EqualError(t, err, "Category with ID 99 not found.")

	assert.Equal(t, int64(5), count(t, db, &models.Product{}))
	assert.Equal(t, int64(0), count(t, db, &models.AuditLog{}))
}

func TestUpdateProduct(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	p, err := svc.UpdateProduct(ctx, colaID, ProductInput{
		ProductName: "Cola Zero",
		Price:       decimal.RequireFromString("2.19"),
		Brand:       "Brand A",
		CategoryID:  1,
	})
	require.NoError(t, err)
	assert.Equal(t, "Cola Zero", p.ProductName)
	assert.Equal(t, "2.19", p.Price.String())

	// Existing orders are priced from the current product row.
	c, err := svc.GetCashier(ctx, johnID)
	require.NoError(t, err)
	assert.Equal(t, "6.87", c.Orders[0].Total.String())

	logs, err := audit.List(ctx, db, audit.Filter{EntityType: "product", EntityID: colaID})
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, models.AuditActionUpdate, logs[0].Action)
	assert.Contains(t, logs[0].BeforeData, `"productName":"Cola"`)
	assert.Contains(t, logs[0].AfterData, `"productName":"Cola Zero"`)

	_, err = svc.UpdateProduct(ctx, 99, ProductInput{CategoryID: 1})
	assert.EqualError(t, err, "Product with ID 99 not found.")

	_, err = svc.UpdateProduct(ctx, colaID, ProductInput{ProductName: "Cola", Price: decimal.RequireFromString("1"), Brand: "A", CategoryID: 42})
	assert.EqualError(t, err, "Category with ID 42 not found.")
}

func TestUpdateProductLenientByDefault(t *testing.T) {
	svc, _ := newTestService(t)

	p, err := svc.UpdateProduct(context.Background(), ojID, ProductInput{CategoryID: 1})
	require.NoError(t, err)
	assert.Equal(t, "", p.ProductName)
	assert.Equal(t, "0.00", p.Price.String())
}

func TestUpdateProductStrict(t *testing.T) {
	svc, db := newTestService(t, WithStrictProductUpdates(true))
	ctx := context.Background()

	_, err := svc.UpdateProduct(ctx, ojID, ProductInput{CategoryID: 1})
	require.ErrorIs(t, err, ErrBadRequest)

	var oj models.Product
	require.NoError(t, db.First(&oj, ojID).Error)
	assert.Equal(t, "Orange Juice", oj.ProductName)

	p, err := svc.UpdateProduct(ctx, ojID, ProductInput{ProductName: " Apple Juice ", Price: decimal.RequireFromString("3.10"), Brand: "Brand B", CategoryID: 1})
	require.NoError(t, err)
	assert.Equal(t, "Apple Juice", p.ProductName)
	assert.Equal(t, "3.10", p.Price.String())
}
