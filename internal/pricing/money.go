package pricing

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"
)

const currencyPlaces = 2

// Money is a decimal amount that serialises as a JSON number with two fractional digits.
type Money struct {
	d decimal.Decimal
}

func NewMoney(d decimal.Decimal) Money { return Money{d: d} }

func (m Money) Decimal() decimal.Decimal { return m.d }

func (m Money) String() string { return m.d.StringFixed(currencyPlaces) }

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.d.StringFixed(currencyPlaces)), nil
}

// UnmarshalJSON accepts both 1.99 and "1.99".
func (m *Money) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		m.d = decimal.Zero
		return nil
	}
	var d decimal.Decimal
	if err := d.UnmarshalJSON(b); err != nil {
		return fmt.Errorf("pricing: invalid amount %s: %w", b, err)
	}
	m.d = d
	return nil
}
