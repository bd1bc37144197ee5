package drawer

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Entries is the working set of cash entries for a drawer.
// The zero value is an empty set ready to use. Insertion order is kept.
type Entries struct {
	items []CashEntry
}

// NewEntries builds a set from a snapshot, dropping zero quantities and
// keeping the last entry for a repeated key.
func NewEntries(snapshot []CashEntry) *Entries {
	es := &Entries{}
	for _, e := range snapshot {
		es.set(e.Type, e.Denomination, e.Quantity)
	}
	return es
}

// Update is the single mutation primitive. Quantity zero removes any entry
// for (t, denomination); otherwise the entry is inserted or replaced.
// Receipts always carry quantity 1.
func (es *Entries) Update(t EntryType, denomination decimal.Decimal, quantity int) error {
	if !t.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidEntryType, t)
	}
	if !denomination.IsPositive() {
		return fmt.Errorf("%w: %s", ErrInvalidDenomination, denomination)
	}
	if quantity < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}
	if t == EntryReceipt && quantity > 1 {
		quantity = 1
	}
	es.set(t, denomination, quantity)
	return nil
}

func (es *Entries) set(t EntryType, denomination decimal.Decimal, quantity int) {
	idx := es.index(t, denomination)
	switch {
	case quantity == 0 && idx >= 0:
		es.items = append(es.items[:idx], es.items[idx+1:]...)
	case quantity == 0:
	case idx >= 0:
		es.items[idx].Quantity = quantity
	default:
		es.items = append(es.items, CashEntry{Type: t, Denomination: denomination, Quantity: quantity})
	}
}

func (es *Entries) index(t EntryType, denomination decimal.Decimal) int {
	for i, e := range es.items {
		if e.matches(t, denomination) {
			return i
		}
	}
	return -1
}

// Get returns the entry for (t, denomination) if present.
func (es *Entries) Get(t EntryType, denomination decimal.Decimal) (CashEntry, bool) {
	if idx := es.index(t, denomination); idx >= 0 {
		return es.items[idx], true
	}
	return CashEntry{}, false
}

// Quantity returns the count for (t, denomination), zero when absent.
func (es *Entries) Quantity(t EntryType, denomination decimal.Decimal) int {
	e, _ := es.Get(t, denomination)
	return e.Quantity
}

// ByType returns a copy of the entries of one type.
func (es *Entries) ByType(t EntryType) []CashEntry {
	var out []CashEntry
	for _, e := range es.items {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

// Total sums every entry total. Computed on each call.
func (es *Entries) Total() decimal.Decimal {
	return SumEntries(es.items)
}

// Len returns the number of entries.
func (es *Entries) Len() int {
	return len(es.items)
}

// Snapshot returns a copy detached from the set.
// The result is never nil.
func (es *Entries) Snapshot() []CashEntry {
	out := make([]CashEntry, len(es.items))
	copy(out, es.items)
	return out
}

// Reset empties the set.
func (es *Entries) Reset() {
	es.items = nil
}

// SumEntries returns the sum of entry totals.
func SumEntries(entries []CashEntry) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range entries {
		sum = sum.Add(e.Total())
	}
	return sum
}
