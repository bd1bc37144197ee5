package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/cashdrawer/internal/drawer"
)

// GetAll returns every shift, open and closed, by open time newest first.
// Ties are broken by id descending. Returns an empty slice (not nil) when
// the store is empty.
func (s *Store) GetAll(ctx context.Context) ([]drawer.ShiftRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+slotColumns+` FROM current_shift
		UNION ALL
		SELECT `+shiftColumns+` FROM shift_history
		ORDER BY open_time DESC, id DESC
	`)
	if err != nil {
		return nil, storageErr("query shifts", err)
	}
	defer rows.Close()

	shifts := []drawer.ShiftRecord{}
	for rows.Next() {
		shift, err := scanShift(rows)
		if err != nil {
			return nil, storageErr("scan shift", err)
		}
		shifts = append(shifts, shift)
	}

	if err := rows.Err(); err != nil {
		return nil, storageErr("iterate shifts", err)
	}

	return shifts, nil
}

// GetOpenShift returns the shift held in the current slot.
// ok is false, with a nil error, when no shift is open.
func (s *Store) GetOpenShift(ctx context.Context) (shift drawer.ShiftRecord, ok bool, err error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+slotColumns+` FROM current_shift WHERE slot = 1`)

	shift, err = scanShift(row)
	if errors.Is(err, sql.ErrNoRows) {
		return drawer.ShiftRecord{}, false, nil
	}
	if err != nil {
		return drawer.ShiftRecord{}, false, storageErr("read open shift", err)
	}
	return shift, true, nil
}

// Get retrieves a single shift by id from either table.
// Returns drawer.ErrNotFound if no shift has that id.
func (s *Store) Get(ctx context.Context, id string) (drawer.ShiftRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+slotColumns+` FROM current_shift WHERE id = ?
		UNION ALL
		SELECT `+shiftColumns+` FROM shift_history WHERE id = ?
	`, id, id)

	shift, err := scanShift(row)
	if errors.Is(err, sql.ErrNoRows) {
		return drawer.ShiftRecord{}, fmt.Errorf("shift %s: %w", id, drawer.ErrNotFound)
	}
	if err != nil {
		return drawer.ShiftRecord{}, storageErr("read shift", err)
	}
	return shift, nil
}
