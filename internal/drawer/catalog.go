package drawer

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Catalog lists the bill, coin and roll denominations a drawer counts.
type Catalog struct {
	Bills []decimal.Decimal
	Coins []decimal.Decimal
	Rolls []decimal.Decimal
}

// DefaultCatalog returns the US drawer layout.
func DefaultCatalog() Catalog {
	return Catalog{
		Bills: decimals("100", "50", "20", "10", "5", "1"),
		Coins: decimals("1", "0.25", "0.10", "0.05", "0.01"),
		Rolls: decimals("10", "5", "2", "1", "0.5"),
	}
}

// NewCatalog builds a catalog from float lists, as read from configuration.
// Empty lists fall back to the defaults.
func NewCatalog(bills, coins, rolls []float64) Catalog {
	c := DefaultCatalog()
	if len(bills) > 0 {
		c.Bills = fromFloats(bills)
	}
	if len(coins) > 0 {
		c.Coins = fromFloats(coins)
	}
	if len(rolls) > 0 {
		c.Rolls = fromFloats(rolls)
	}
	return c
}

// For returns the denominations of a counted type. Receipts have none.
func (c Catalog) For(t EntryType) []decimal.Decimal {
	switch t {
	case EntryBill:
		return c.Bills
	case EntryCoin:
		return c.Coins
	case EntryRoll:
		return c.Rolls
	}
	return nil
}

// Check fails with ErrUnknownDenomination when a counted type is given a
// denomination outside the catalog. Receipts always pass.
func (c Catalog) Check(t EntryType, denomination decimal.Decimal) error {
	if !t.Counted() {
		return nil
	}
	for _, d := range c.For(t) {
		if d.Equal(denomination) {
			return nil
		}
	}
	return fmt.Errorf("%w: %s %s", ErrUnknownDenomination, t, denomination)
}

func decimals(values ...string) []decimal.Decimal {
	out := make([]decimal.Decimal, len(values))
	for i, v := range values {
		out[i] = decimal.RequireFromString(v)
	}
	return out
}

func fromFloats(values []float64) []decimal.Decimal {
	out := make([]decimal.Decimal, len(values))
	for i, v := range values {
		out[i] = decimal.NewFromFloat(v)
	}
	return out
}
