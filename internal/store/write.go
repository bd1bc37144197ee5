package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/cashdrawer/internal/drawer"
)

// Save upserts a shift by id, last write wins.
//
// An open shift goes to the current_shift slot. If the slot already holds a
// different shift, Save fails with drawer.ErrShiftAlreadyOpen and nothing is
// written. A closed shift goes to shift_history and leaves the slot empty if
// the slot held it. Either way the id ends up in exactly one table.
func (s *Store) Save(ctx context.Context, shift drawer.ShiftRecord) error {
	row, err := toRow(shift)
	if err != nil {
		return fmt.Errorf("save shift: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return storageErr("save shift: begin tx", err)
	}
	defer tx.Rollback() // No-op if committed

	switch shift.Status {
	case drawer.StatusOpen:
		err = saveOpen(ctx, tx, row)
	case drawer.StatusClosed:
		err = saveClosed(ctx, tx, row)
	default:
		return fmt.Errorf("save shift: invalid status %q", shift.Status)
	}
	if err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return storageErr("save shift: commit", err)
	}
	return nil
}

func saveOpen(ctx context.Context, tx *sql.Tx, row shiftRow) error {
	var slotID string
	err := tx.QueryRowContext(ctx, `SELECT id FROM current_shift WHERE slot = 1`).Scan(&slotID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return storageErr("save shift: read slot", err)
	case slotID != row.ID:
		return fmt.Errorf("save shift %s: %w (open shift %s)", row.ID, drawer.ErrShiftAlreadyOpen, slotID)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM shift_history WHERE id = ?`, row.ID); err != nil {
		return storageErr("save shift: clear history row", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO current_shift
		(slot, id, organization_name, drawer_number, cashier_name, open_time, opening_balance, shift_drop, entries, status)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(slot) DO UPDATE SET
			id = excluded.id,
			organization_name = excluded.organization_name,
			drawer_number = excluded.drawer_number,
			cashier_name = excluded.cashier_name,
			open_time = excluded.open_time,
			opening_balance = excluded.opening_balance,
			shift_drop = excluded.shift_drop,
			entries = excluded.entries,
			status = excluded.status
	`,
		row.ID,
		row.OrganizationName,
		row.DrawerNumber,
		row.CashierName,
		row.OpenTime,
		row.OpeningBalance,
		row.ShiftDrop,
		row.Entries,
		row.Status,
	)
	if err != nil {
		return storageErr("save shift: write slot", err)
	}
	return nil
}

func saveClosed(ctx context.Context, tx *sql.Tx, row shiftRow) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM current_shift WHERE id = ?`, row.ID); err != nil {
		return storageErr("save shift: release slot", err)
	}

	_, err := tx.ExecContext(ctx, `
		INSERT INTO shift_history
		(id, organization_name, drawer_number, cashier_name, open_time, close_time,
		 opening_balance, closing_balance, shift_drop, entries, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			organization_name = excluded.organization_name,
			drawer_number = excluded.drawer_number,
			cashier_name = excluded.cashier_name,
			open_time = excluded.open_time,
			close_time = excluded.close_time,
			opening_balance = excluded.opening_balance,
			closing_balance = excluded.closing_balance,
			shift_drop = excluded.shift_drop,
			entries = excluded.entries,
			status = excluded.status
	`,
		row.ID,
		row.OrganizationName,
		row.DrawerNumber,
		row.CashierName,
		row.OpenTime,
		row.CloseTime,
		row.OpeningBalance,
		row.ClosingBalance,
		row.ShiftDrop,
		row.Entries,
		row.Status,
	)
	if err != nil {
		return storageErr("save shift: write history", err)
	}
	return nil
}

// ClearHistory deletes every closed shift in one transaction and returns the
// number removed. The open shift is never touched.
func (s *Store) ClearHistory(ctx context.Context) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, storageErr("clear history: begin tx", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `DELETE FROM shift_history WHERE status = ?`, string(drawer.StatusClosed))
	if err != nil {
		return 0, storageErr("clear history: delete", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, storageErr("clear history: rows affected", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, storageErr("clear history: commit", err)
	}
	return int(n), nil
}
