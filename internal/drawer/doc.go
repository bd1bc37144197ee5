// Package drawer defines the cash drawer domain: entries, shift records and
// the denomination catalog.
//
// # Entries
//
// A CashEntry is one (type, denomination, quantity) line. Its total is always
// derived as denomination × quantity and is never stored on its own. Entries
// holds the working set for a drawer and enforces:
//   - at most one entry per (type, denomination), compared by decimal value
//   - no entry with quantity zero (setting zero removes the entry)
//
// # Shifts
//
// A ShiftRecord is one cashier session. It is created open, saved in place by
// ID while open and transitioned exactly once to closed. Entries stored on a
// record are a snapshot: Snapshot and Clone return deep copies so later edits
// to the working set never reach history.
//
// Money values use shopspring/decimal throughout.
package drawer
