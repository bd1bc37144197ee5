package drawer

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Status is the lifecycle state of a shift.
type Status string

const (
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
)

// ParseStatus parses a stored status value.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusOpen, StatusClosed:
		return Status(s), nil
	}
	return "", fmt.Errorf("invalid shift status %q", s)
}

// ShiftRecord is one cash drawer session.
//
// CloseTime and ClosingBalance are nil while the shift is open.
type ShiftRecord struct {
	ID               string           `json:"id"`
	OrganizationName string           `json:"organizationName,omitempty"`
	DrawerNumber     string           `json:"drawerNumber"`
	CashierName      string           `json:"cashierName"`
	OpenTime         time.Time        `json:"openTime"`
	CloseTime        *time.Time       `json:"closeTime,omitempty"`
	OpeningBalance   decimal.Decimal  `json:"openingBalance"`
	ClosingBalance   *decimal.Decimal `json:"closingBalance,omitempty"`
	ShiftDrop        decimal.Decimal  `json:"shiftDrop"`
	Entries          []CashEntry      `json:"entries"`
	Status           Status           `json:"status"`
}

// IsOpen reports whether the shift is still open.
func (s ShiftRecord) IsOpen() bool {
	return s.Status == StatusOpen
}

// Total sums the entry snapshot held by the record.
func (s ShiftRecord) Total() decimal.Decimal {
	return SumEntries(s.Entries)
}

// Variance returns closing balance minus opening balance minus drop.
// Returns nil while the shift is open.
func (s ShiftRecord) Variance() *decimal.Decimal {
	if s.ClosingBalance == nil {
		return nil
	}
	v := s.ClosingBalance.Sub(s.OpeningBalance).Sub(s.ShiftDrop)
	return &v
}

// Duration returns how long the shift was open. Zero while open.
func (s ShiftRecord) Duration() time.Duration {
	if s.CloseTime == nil {
		return 0
	}
	return s.CloseTime.Sub(s.OpenTime)
}

// Clone returns a deep copy of the record.
func (s ShiftRecord) Clone() ShiftRecord {
	out := s
	if s.CloseTime != nil {
		t := *s.CloseTime
		out.CloseTime = &t
	}
	if s.ClosingBalance != nil {
		b := *s.ClosingBalance
		out.ClosingBalance = &b
	}
	out.Entries = make([]CashEntry, len(s.Entries))
	copy(out.Entries, s.Entries)
	return out
}
