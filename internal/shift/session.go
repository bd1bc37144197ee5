package shift

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/roach88/cashdrawer/internal/drawer"
)

// ShiftStore is the persistence the Session needs. *store.Store satisfies it.
type ShiftStore interface {
	Save(ctx context.Context, shift drawer.ShiftRecord) error
	Get(ctx context.Context, id string) (drawer.ShiftRecord, error)
	GetAll(ctx context.Context) ([]drawer.ShiftRecord, error)
	GetOpenShift(ctx context.Context) (drawer.ShiftRecord, bool, error)
	ClearHistory(ctx context.Context) (int, error)
}

// Option configures a Session.
type Option func(*Session)

// WithClock sets the clock used for open and close times.
func WithClock(c Clock) Option {
	return func(s *Session) { s.clock = c }
}

// WithIDGenerator sets the shift id generator.
func WithIDGenerator(g IDGenerator) Option {
	return func(s *Session) { s.ids = g }
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithCatalog sets the denominations accepted for bills, coins and rolls.
func WithCatalog(c drawer.Catalog) Option {
	return func(s *Session) { s.catalog = c }
}

// Session is the current-shift state for one drawer.
type Session struct {
	store    ShiftStore
	clock    Clock
	ids      IDGenerator
	logger   *slog.Logger
	catalog  drawer.Catalog
	validate *validator.Validate

	details Details
	entries drawer.Entries
	drop    decimal.Decimal
	active  *drawer.ShiftRecord
}

// New creates an idle Session over st.
func New(st ShiftStore, opts ...Option) *Session {
	s := &Session{
		store:    st,
		clock:    SystemClock{},
		ids:      UUIDv7Generator{},
		logger:   slog.Default(),
		catalog:  drawer.DefaultCatalog(),
		validate: newValidator(),
		drop:     decimal.Zero,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load restores the open shift from the store, if any, and returns the full
// history newest first. On error the Session is unchanged.
func (s *Session) Load(ctx context.Context) ([]drawer.ShiftRecord, error) {
	open, ok, err := s.store.GetOpenShift(ctx)
	if err != nil {
		return nil, fmt.Errorf("load open shift: %w", err)
	}
	history, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}

	if ok {
		s.restore(open)
		s.logger.Debug("restored open shift", "id", open.ID, "entries", len(open.Entries))
	} else {
		s.active = nil
	}
	return history, nil
}

func (s *Session) restore(open drawer.ShiftRecord) {
	rec := open.Clone()
	s.active = &rec
	s.entries = *drawer.NewEntries(rec.Entries)
	s.drop = rec.ShiftDrop
	s.details = Details{
		OrganizationName: rec.OrganizationName,
		DrawerNumber:     rec.DrawerNumber,
		CashierName:      rec.CashierName,
	}
}

// SetDetails sets the identifying fields used by the next StartShift.
// Values are trimmed and NFC-normalized. An open shift keeps the details it
// was started with.
func (s *Session) SetDetails(d Details) {
	s.details = d.normalize()
}

// Details returns the identifying fields.
func (s *Session) Details() Details {
	return s.details
}

// Active returns a copy of the open shift. ok is false when idle.
func (s *Session) Active() (drawer.ShiftRecord, bool) {
	if s.active == nil {
		return drawer.ShiftRecord{}, false
	}
	return s.active.Clone(), true
}

// Catalog returns the denominations this Session accepts.
func (s *Session) Catalog() drawer.Catalog {
	return s.catalog
}

// Entries returns a snapshot of the working entries.
func (s *Session) Entries() []drawer.CashEntry {
	return s.entries.Snapshot()
}

// Total sums the working entries.
func (s *Session) Total() decimal.Decimal {
	return s.entries.Total()
}

// Drop returns the drop amount that EndShift will record.
func (s *Session) Drop() decimal.Decimal {
	return s.drop
}

// UpdateEntry sets the quantity for (t, denomination). Zero removes the entry.
// Bills, coins and rolls must use a catalog denomination.
func (s *Session) UpdateEntry(t drawer.EntryType, denomination decimal.Decimal, quantity int) error {
	if err := s.catalog.Check(t, denomination); err != nil {
		return err
	}
	return s.entries.Update(t, denomination, quantity)
}

// AddReceipt records a receipt of the given amount.
func (s *Session) AddReceipt(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: %s", drawer.ErrInvalidDenomination, amount)
	}
	return s.entries.Update(drawer.EntryReceipt, amount, 1)
}

// RemoveReceipt removes the receipt of the given amount, if present.
func (s *Session) RemoveReceipt(amount decimal.Decimal) error {
	return s.entries.Update(drawer.EntryReceipt, amount, 0)
}

// SetDrop sets the amount removed from the drawer during the shift.
func (s *Session) SetDrop(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: %s", drawer.ErrInvalidAmount, amount)
	}
	s.drop = amount
	return nil
}

// StartShift opens a new shift from the current details and entries.
//
// Fails with drawer.ErrShiftAlreadyOpen if a shift is active and with a
// *drawer.ValidationError if drawer number or cashier name is missing. The
// shift becomes active only after the store accepts it.
func (s *Session) StartShift(ctx context.Context) (drawer.ShiftRecord, error) {
	if s.active != nil {
		return drawer.ShiftRecord{}, fmt.Errorf("start shift: %w", drawer.ErrShiftAlreadyOpen)
	}
	if err := validateDetails(s.validate, s.details); err != nil {
		return drawer.ShiftRecord{}, err
	}

	rec := drawer.ShiftRecord{
		ID:               s.ids.Generate(),
		OrganizationName: s.details.OrganizationName,
		DrawerNumber:     s.details.DrawerNumber,
		CashierName:      s.details.CashierName,
		OpenTime:         s.clock.Now().UTC(),
		OpeningBalance:   s.entries.Total(),
		ShiftDrop:        decimal.Zero,
		Entries:          s.entries.Snapshot(),
		Status:           drawer.StatusOpen,
	}

	if err := s.store.Save(ctx, rec); err != nil {
		return drawer.ShiftRecord{}, fmt.Errorf("start shift: %w", err)
	}

	s.active = &rec
	s.logger.Info("shift started",
		"id", rec.ID,
		"drawer", rec.DrawerNumber,
		"cashier", rec.CashierName,
		"opening_balance", rec.OpeningBalance.StringFixed(2),
	)
	return rec.Clone(), nil
}

// SaveProgress writes the current entries and drop onto the open shift.
// Does nothing when idle.
func (s *Session) SaveProgress(ctx context.Context) error {
	if s.active == nil {
		return nil
	}

	rec := s.active.Clone()
	rec.Entries = s.entries.Snapshot()
	rec.ShiftDrop = s.drop

	if err := s.store.Save(ctx, rec); err != nil {
		return fmt.Errorf("save shift: %w", err)
	}

	s.active = &rec
	s.logger.Debug("shift saved", "id", rec.ID, "entries", len(rec.Entries), "total", rec.Total().StringFixed(2))
	return nil
}

// EndShift closes the active shift with the current entries and drop.
//
// Fails with drawer.ErrNoOpenShift when idle. After the store accepts the
// closed record the Session returns to idle with empty entries and zero drop.
func (s *Session) EndShift(ctx context.Context) (drawer.ShiftRecord, error) {
	if s.active == nil {
		return drawer.ShiftRecord{}, fmt.Errorf("end shift: %w", drawer.ErrNoOpenShift)
	}

	now := s.clock.Now().UTC()
	closing := s.entries.Total()

	rec := s.active.Clone()
	rec.CloseTime = &now
	rec.ClosingBalance = &closing
	rec.ShiftDrop = s.drop
	rec.Entries = s.entries.Snapshot()
	rec.Status = drawer.StatusClosed

	if err := s.store.Save(ctx, rec); err != nil {
		return drawer.ShiftRecord{}, fmt.Errorf("end shift: %w", err)
	}

	s.active = nil
	s.entries.Reset()
	s.drop = decimal.Zero
	s.logger.Info("shift ended",
		"id", rec.ID,
		"closing_balance", closing.StringFixed(2),
		"drop", rec.ShiftDrop.StringFixed(2),
	)
	return rec.Clone(), nil
}

// History returns every stored shift newest first.
func (s *Session) History(ctx context.Context) ([]drawer.ShiftRecord, error) {
	history, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	return history, nil
}

// Shift returns one stored shift by id.
func (s *Session) Shift(ctx context.Context, id string) (drawer.ShiftRecord, error) {
	rec, err := s.store.Get(ctx, id)
	if err != nil {
		return drawer.ShiftRecord{}, fmt.Errorf("load shift: %w", err)
	}
	return rec, nil
}

// ClearHistory deletes every closed shift. The open shift is kept.
func (s *Session) ClearHistory(ctx context.Context) (int, error) {
	n, err := s.store.ClearHistory(ctx)
	if err != nil {
		return 0, fmt.Errorf("clear history: %w", err)
	}
	s.logger.Info("history cleared", "removed", n)
	return n, nil
}
