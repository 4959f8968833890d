// Package pricing holds the order total arithmetic. All amounts are exact decimals;
// nothing here goes through float64.
package pricing

import "github.com/shopspring/decimal"

// LineItem is one order line with its product's current unit price already resolved.
type LineItem struct {
	Quantity  int
	UnitPrice decimal.Decimal
}

// ComputeTotal returns the sum of quantity x unit price over items, zero for no items.
// Negative inputs are not clamped; callers validate quantities and prices before persisting.
func ComputeTotal(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}
