// Package shift holds the shift lifecycle for one drawer.
//
// A Session is the single orchestrating caller of the store. It keeps the
// working entries, the drop amount, the identifying details and the active
// shift slot, and enforces:
//   - Idle → Open on StartShift (drawer number and cashier name required)
//   - Open → Closed on EndShift (entries and drop reset afterwards)
//   - totals are recomputed from entries on every read
//
// Every persistence call happens before the in-memory state changes, so a
// failed call leaves the Session exactly as it was. There are no retries.
//
// A Session is not safe for concurrent use.
package shift
