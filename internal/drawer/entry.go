package drawer

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// EntryType is the kind of a cash entry.
type EntryType string

const (
	EntryBill    EntryType = "bill"
	EntryCoin    EntryType = "coin"
	EntryRoll    EntryType = "roll"
	EntryReceipt EntryType = "receipt"
)

// EntryTypes lists every entry type in display order.
var EntryTypes = []EntryType{EntryBill, EntryCoin, EntryRoll, EntryReceipt}

// ParseEntryType parses a case-insensitive entry type name.
// Plural forms ("bills", "coins") are accepted.
func ParseEntryType(s string) (EntryType, error) {
	v := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "s")
	for _, t := range EntryTypes {
		if string(t) == v {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidEntryType, s)
}

// Valid reports whether t is a known entry type.
func (t EntryType) Valid() bool {
	for _, known := range EntryTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Counted reports whether entries of this type come from the denomination
// catalog. Receipts carry arbitrary amounts.
func (t EntryType) Counted() bool {
	return t == EntryBill || t == EntryCoin || t == EntryRoll
}

// CashEntry is one denomination line within a shift.
type CashEntry struct {
	Type         EntryType
	Denomination decimal.Decimal
	Quantity     int
}

// Total returns Denomination × Quantity.
func (e CashEntry) Total() decimal.Decimal {
	return e.Denomination.Mul(decimal.NewFromInt(int64(e.Quantity)))
}

// matches reports whether e is keyed by (t, denomination).
func (e CashEntry) matches(t EntryType, denomination decimal.Decimal) bool {
	return e.Type == t && e.Denomination.Equal(denomination)
}

type cashEntryJSON struct {
	Type         EntryType       `json:"type"`
	Denomination decimal.Decimal `json:"denomination"`
	Quantity     int             `json:"quantity"`
	Total        decimal.Decimal `json:"total"`
}

// MarshalJSON writes the derived total alongside the inputs.
func (e CashEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal(cashEntryJSON{
		Type:         e.Type,
		Denomination: e.Denomination,
		Quantity:     e.Quantity,
		Total:        e.Total(),
	})
}

// UnmarshalJSON reads an entry. Any stored total is ignored and recomputed.
func (e *CashEntry) UnmarshalJSON(data []byte) error {
	var raw cashEntryJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if !raw.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidEntryType, raw.Type)
	}
	*e = CashEntry{
		Type:         raw.Type,
		Denomination: raw.Denomination,
		Quantity:     raw.Quantity,
	}
	return nil
}
