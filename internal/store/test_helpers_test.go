package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/roach88/cashdrawer/internal/drawer"
)

// createTestStore creates a new store in a temp directory for testing.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

var baseTime = time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC)

// createOpenShift creates an open shift opened hoursAfter the base time.
func createOpenShift(id string, hoursAfter int) drawer.ShiftRecord {
	return drawer.ShiftRecord{
		ID:             id,
		DrawerNumber:   "12",
		CashierName:    "Alice",
		OpenTime:       baseTime.Add(time.Duration(hoursAfter) * time.Hour),
		OpeningBalance: decimal.RequireFromString("150"),
		ShiftDrop:      decimal.Zero,
		Entries: []drawer.CashEntry{
			{Type: drawer.EntryBill, Denomination: decimal.RequireFromString("50"), Quantity: 3},
		},
		Status: drawer.StatusOpen,
	}
}

// createClosedShift creates a closed shift lasting eight hours.
func createClosedShift(id string, hoursAfter int) drawer.ShiftRecord {
	s := createOpenShift(id, hoursAfter)
	closeTime := s.OpenTime.Add(8 * time.Hour)
	closing := decimal.RequireFromString("310.25")
	s.CloseTime = &closeTime
	s.ClosingBalance = &closing
	s.ShiftDrop = decimal.RequireFromString("100")
	s.Entries = append(s.Entries, drawer.CashEntry{
		Type: drawer.EntryReceipt, Denomination: decimal.RequireFromString("10.25"), Quantity: 1,
	})
	s.Status = drawer.StatusClosed
	return s
}
