package pricing

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestComputeTotal(t *testing.T) {
	tests := []struct {
		name  string
		items []LineItem
		want  string
	}{
		{"empty", nil, "0"},
		{"single", []LineItem{{Quantity: 3, UnitPrice: dec("2.99")}}, "8.97"},
		{"cola and chips", []LineItem{{Quantity: 2, UnitPrice: dec("1.99")}, {Quantity: 1, UnitPrice: dec("2.49")}}, "6.47"},
		{"zero price", []LineItem{{Quantity: 4, UnitPrice: decimal.Zero}}, "0"},
		{"float trap", []LineItem{{Quantity: 1, UnitPrice: dec("0.10")}, {Quantity: 1, UnitPrice: dec("0.20")}}, "0.30"},
		{"negative passes through", []LineItem{{Quantity: -1, UnitPrice: dec("1.00")}}, "-1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTotal(tt.items)
			assert.True(t, got.Equal(dec(tt.want)), "got %s want %s", got, tt.want)
		})
	}
}

func TestComputeTotalOrderIndependent(t *testing.T) {
	items := []LineItem{
		{Quantity: 7, UnitPrice: dec("0.01")},
		{Quantity: 1, UnitPrice: dec("4.99")},
		{Quantity: 12, UnitPrice: dec("3.33")},
		{Quantity: 2, UnitPrice: dec("1999.95")},
	}
	forward := ComputeTotal(items)

	reversed := make([]LineItem, len(items))
	for i := range items {
		reversed[len(items)-1-i] = items[i]
	}
	assert.True(t, forward.Equal(ComputeTotal(reversed)))
	assert.Equal(t, "4044.92", forward.StringFixed(2))
}

func TestComputeTotalManySmallAmounts(t *testing.T) {
	items := make([]LineItem, 0, 1000)
	for i := 0; i < 1000; i++ {
		items = append(items, LineItem{Quantity: 1, UnitPrice: dec("0.10")})
	}
	assert.True(t, ComputeTotal(items).Equal(dec("100")))
}

func TestMoneyJSON(t *testing.T) {
	b, err := json.Marshal(struct {
		Total Money `json:"total"`
	}{Total: NewMoney(dec("4"))})
	require.NoError(t, err)
	assert.JSONEq(t, `{"total":4.00}`, string(b))
	assert.Equal(t, `{"total":4.00}`, string(b))

	var in struct {
		A Money `json:"a"`
		B Money `json:"b"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":1.99,"b":"2.49"}`), &in))
	assert.True(t, in.A.Decimal().Equal(dec("1.99")))
	assert.True(t, in.B.Decimal().Equal(dec("2.49")))
	assert.Equal(t, "2.49", in.B.String())

	assert.Error(t, json.Unmarshal([]byte(`{"a":"abc"}`), &in))
}
