// Package store provides SQLite-backed durable storage for shift records.
//
// The layout keeps the open shift apart from history:
//   - current_shift: a singleton slot (slot = 1) holding the open shift, if any
//   - shift_history: closed shifts keyed by id
//
// A second open shift cannot exist: saving an open shift with a different id
// while the slot is occupied fails with drawer.ErrShiftAlreadyOpen. Saving a
// closed shift moves it from the slot into history in one transaction.
//
// # Ordering
//
// GetAll returns records by open_time DESC, id DESC. Times are stored as Unix
// nanoseconds in UTC so ordering is numeric.
//
// # Errors
//
// Every driver failure is returned as a *StorageError, which matches
// ErrStorageUnavailable under errors.Is. The store does no other validation.
//
// # Database Configuration
//
//   - WAL mode
//   - synchronous=NORMAL
//   - busy_timeout=5000
//   - foreign_keys=ON
package store
