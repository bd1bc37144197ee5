package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/roach88/cashdrawer/internal/drawer"
	"github.com/roach88/cashdrawer/internal/export"
	"github.com/roach88/cashdrawer/internal/shift"
	"github.com/roach88/cashdrawer/internal/store"
)

// env is what a command needs once the store is open.
type env struct {
	opts     *RootOptions
	out      *OutputFormatter
	session  *shift.Session
	renderer *export.Renderer
	close    func()
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   o.Verbose,
	}
}

// open opens the store and loads the session. The caller must call
// env.close. Failures are already reported.
func (o *RootOptions) open(ctx context.Context, cmd *cobra.Command) (*env, error) {
	f := o.formatter(cmd)

	st, err := store.Open(o.cfg.Database)
	if err != nil {
		return nil, o.fail(f, "open the shift database", err)
	}

	opts := []shift.Option{
		shift.WithLogger(o.log()),
		shift.WithCatalog(o.cfg.Catalog()),
	}
	if o.Clock != nil {
		opts = append(opts, shift.WithClock(o.Clock))
	}
	if o.IDs != nil {
		opts = append(opts, shift.WithIDGenerator(o.IDs))
	}
	sess := shift.New(st, opts...)

	closeStore := func() {
		if err := st.Close(); err != nil {
			o.log().Warn("close store", "error", err)
		}
	}
	if _, err := sess.Load(ctx); err != nil {
		closeStore()
		return nil, o.fail(f, "load shift data", err)
	}

	return &env{
		opts:     o,
		out:      f,
		session:  sess,
		renderer: export.NewRenderer(o.cfg.CurrencySymbol),
		close:    closeStore,
	}, nil
}

// requireOpen fails with drawer.ErrNoOpenShift when no shift is active.
func requireOpen(sess *shift.Session) error {
	if _, ok := sess.Active(); !ok {
		return drawer.ErrNoOpenShift
	}
	return nil
}

// countArg is one parsed "type:denomination=quantity" argument.
type countArg struct {
	Type         drawer.EntryType
	Denomination decimal.Decimal
	Quantity     int
}

// parseCount parses "bill:20=3". The quantity defaults to 1 for receipts.
func parseCount(s string) (countArg, error) {
	typ, rest, ok := strings.Cut(s, ":")
	if !ok {
		return countArg{}, fmt.Errorf("invalid count %q: expected type:denomination=quantity", s)
	}
	t, err := drawer.ParseEntryType(typ)
	if err != nil {
		return countArg{}, err
	}

	denom, qty, hasQty := strings.Cut(rest, "=")
	if !hasQty && t != drawer.EntryReceipt {
		return countArg{}, fmt.Errorf("invalid count %q: expected type:denomination=quantity", s)
	}
	d, err := parseAmount(denom)
	if err != nil {
		return countArg{}, err
	}
	n := 1
	if hasQty {
		if n, err = parseQuantity(qty); err != nil {
			return countArg{}, err
		}
	}
	return countArg{Type: t, Denomination: d, Quantity: n}, nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "$")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount %q", s)
	}
	return d, nil
}

func parseQuantity(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid quantity %q", s)
	}
	return n, nil
}

// applyCounts parses and applies each count to sess.
func applyCounts(sess *shift.Session, counts []string) error {
	for _, c := range counts {
		arg, err := parseCount(c)
		if err != nil {
			return err
		}
		if err := sess.UpdateEntry(arg.Type, arg.Denomination, arg.Quantity); err != nil {
			return err
		}
	}
	return nil
}

// applyReceipts parses and adds each receipt amount to sess.
func applyReceipts(sess *shift.Session, amounts []string) error {
	for _, a := range amounts {
		d, err := parseAmount(a)
		if err != nil {
			return err
		}
		if err := sess.AddReceipt(d); err != nil {
			return err
		}
	}
	return nil
}
