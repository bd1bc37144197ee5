package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/roach88/cashdrawer/internal/drawer"
)

// shiftRow is the column form of a drawer.ShiftRecord.
type shiftRow struct {
	ID               string
	OrganizationName string
	DrawerNumber     string
	CashierName      string
	OpenTime         int64
	CloseTime        sql.NullInt64
	OpeningBalance   string
	ClosingBalance   sql.NullString
	ShiftDrop        string
	Entries          string
	Status           string
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// shiftColumns must match the order scanned by scanShift.
const shiftColumns = `id, organization_name, drawer_number, cashier_name, open_time,
	close_time, opening_balance, closing_balance, shift_drop, entries, status`

// slotColumns selects the current_shift row in shiftColumns order.
const slotColumns = `id, organization_name, drawer_number, cashier_name, open_time,
	NULL, opening_balance, NULL, shift_drop, entries, status`

func toRow(shift drawer.ShiftRecord) (shiftRow, error) {
	entries, err := marshalEntries(shift.Entries)
	if err != nil {
		return shiftRow{}, err
	}

	row := shiftRow{
		ID:               shift.ID,
		OrganizationName: shift.OrganizationName,
		DrawerNumber:     shift.DrawerNumber,
		CashierName:      shift.CashierName,
		OpenTime:         shift.OpenTime.UnixNano(),
		OpeningBalance:   shift.OpeningBalance.String(),
		ShiftDrop:        shift.ShiftDrop.String(),
		Entries:          entries,
		Status:           string(shift.Status),
	}
	if shift.CloseTime != nil {
		row.CloseTime = sql.NullInt64{Int64: shift.CloseTime.UnixNano(), Valid: true}
	}
	if shift.ClosingBalance != nil {
		row.ClosingBalance = sql.NullString{String: shift.ClosingBalance.String(), Valid: true}
	}
	return row, nil
}

func fromRow(row shiftRow) (drawer.ShiftRecord, error) {
	status, err := drawer.ParseStatus(row.Status)
	if err != nil {
		return drawer.ShiftRecord{}, err
	}
	opening, err := decimal.NewFromString(row.OpeningBalance)
	if err != nil {
		return drawer.ShiftRecord{}, fmt.Errorf("opening balance: %w", err)
	}
	drop, err := decimal.NewFromString(row.ShiftDrop)
	if err != nil {
		return drawer.ShiftRecord{}, fmt.Errorf("shift drop: %w", err)
	}
	entries, err := unmarshalEntries(row.Entries)
	if err != nil {
		return drawer.ShiftRecord{}, err
	}

	shift := drawer.ShiftRecord{
		ID:               row.ID,
		OrganizationName: row.OrganizationName,
		DrawerNumber:     row.DrawerNumber,
		CashierName:      row.CashierName,
		OpenTime:         time.Unix(0, row.OpenTime).UTC(),
		OpeningBalance:   opening,
		ShiftDrop:        drop,
		Entries:          entries,
		Status:           status,
	}
	if row.CloseTime.Valid {
		t := time.Unix(0, row.CloseTime.Int64).UTC()
		shift.CloseTime = &t
	}
	if row.ClosingBalance.Valid {
		closing, err := decimal.NewFromString(row.ClosingBalance.String)
		if err != nil {
			return drawer.ShiftRecord{}, fmt.Errorf("closing balance: %w", err)
		}
		shift.ClosingBalance = &closing
	}
	return shift, nil
}

func scanShift(sc scanner) (drawer.ShiftRecord, error) {
	var row shiftRow
	err := sc.Scan(
		&row.ID,
		&row.OrganizationName,
		&row.DrawerNumber,
		&row.CashierName,
		&row.OpenTime,
		&row.CloseTime,
		&row.OpeningBalance,
		&row.ClosingBalance,
		&row.ShiftDrop,
		&row.Entries,
		&row.Status,
	)
	if err != nil {
		return drawer.ShiftRecord{}, err
	}
	return fromRow(row)
}

// marshalEntries converts an entry snapshot to JSON TEXT. Nil is stored as [].
func marshalEntries(entries []drawer.CashEntry) (string, error) {
	if entries == nil {
		entries = []drawer.CashEntry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return "", fmt.Errorf("marshal entries: %w", err)
	}
	return string(data), nil
}

func unmarshalEntries(data string) ([]drawer.CashEntry, error) {
	entries := []drawer.CashEntry{}
	if data == "" || data == "[]" {
		return entries, nil
	}
	if err := json.Unmarshal([]byte(data), &entries); err != nil {
		return nil, fmt.Errorf("unmarshal entries: %w", err)
	}
	return entries, nil
}
