package cli

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/cashdrawer/internal/drawer"
	"github.com/roach88/cashdrawer/internal/export"
	"github.com/roach88/cashdrawer/internal/shift"
)

const shellPrompt = "drawer> "

const shellHelp = `Commands:
  set drawer|cashier|org VALUE   set shift details
  count TYPE DENOM QTY           set a bill, coin or roll quantity (0 removes)
  receipt add|remove AMOUNT      add or remove a receipt
  drop AMOUNT                    set the shift drop
  start                          open a shift with the current count
  end                            close the open shift
  save                           save the open shift's current count
  status                         show details, entries and total
  history                        list stored shifts
  show ID                        show one stored shift
  export [text|json|yaml] [ID]   print the history or one shift as a document
  clear-history                  delete every closed shift
  denominations                  list countable denominations
  help                           show this help
  quit                           save and leave
`

// NewShellCommand creates the shell command.
func NewShellCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Count the drawer and run shifts interactively",
		Long: `Start a line-oriented session. Counts and details are kept in memory
between lines, so the drawer can be counted before a shift starts. The open
shift is saved on start, end, save and quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := rootOpts.open(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer e.close()

			e.out.Format = "text"
			if _, ok := e.session.Active(); !ok && rootOpts.cfg.Organization != "" {
				e.session.SetDetails(shift.Details{OrganizationName: rootOpts.cfg.Organization})
			}

			sh := &shell{
				env: e,
				in:  bufio.NewScanner(cmd.InOrStdin()),
				w:   cmd.OutOrStdout(),
			}
			return sh.run(cmd.Context())
		},
	}
}

type shell struct {
	*env
	in *bufio.Scanner
	w  io.Writer
}

func (s *shell) run(ctx context.Context) error {
	if rec, ok := s.session.Active(); ok {
		fmt.Fprintf(s.w, "Resumed open shift %s (drawer %s, %s)\n", rec.ID, rec.DrawerNumber, rec.CashierName)
	}
	fmt.Fprint(s.w, shellPrompt)
	for s.in.Scan() {
		if s.exec(ctx, s.in.Text()) {
			break
		}
		fmt.Fprint(s.w, shellPrompt)
	}
	if err := s.in.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	if err := s.session.SaveProgress(ctx); err != nil {
		return s.opts.fail(s.env.out, "save the shift", err)
	}
	fmt.Fprintln(s.w)
	return nil
}

// exec runs one line and reports whether the shell should stop.
func (s *shell) exec(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	verb, args := strings.ToLower(fields[0]), fields[1:]

	var (
		action string
		err    error
	)
	switch verb {
	case "quit", "exit":
		return true
	case "help", "?":
		fmt.Fprint(s.w, shellHelp)
	case "set":
		action, err = "set the shift details", s.set(line, args)
	case "count":
		action, err = "record the count", s.count(args)
	case "receipt":
		action, err = "record the receipt", s.receipt(args)
	case "drop":
		action, err = "record the drop", s.drop(args)
	case "start":
		action, err = "start the shift", s.start(ctx)
	case "end":
		action, err = "end the shift", s.end(ctx)
	case "save":
		action, err = "save the shift", s.save(ctx)
	case "status", "total":
		s.status()
	case "history":
		action, err = "load shift history", s.history(ctx)
	case "show":
		action, err = "load the shift", s.show(ctx, args)
	case "export":
		action, err = "export", s.export(ctx, args)
	case "clear-history":
		action, err = "clear history", s.clearHistory(ctx)
	case "denominations":
		s.denominations()
	default:
		action, err = "run the command", fmt.Errorf("unknown command %q (type help)", fields[0])
	}

	if err != nil {
		report(s.env.out, s.opts.log(), action, err)
	}
	return false
}

func usage(format string) error {
	return fmt.Errorf("usage: %s", format)
}

func (s *shell) set(line string, args []string) error {
	if len(args) < 1 {
		return usage("set drawer|cashier|org VALUE")
	}
	if _, ok := s.session.Active(); ok {
		return fmt.Errorf("start shift: %w", drawer.ErrShiftAlreadyOpen)
	}

	// The value is the rest of the line so names may contain spaces.
	_, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	_, value, _ := strings.Cut(strings.TrimSpace(rest), " ")

	d := s.session.Details()
	switch strings.ToLower(args[0]) {
	case "drawer":
		d.DrawerNumber = value
	case "cashier":
		d.CashierName = value
	case "org", "organization":
		d.OrganizationName = value
	default:
		return usage("set drawer|cashier|org VALUE")
	}
	s.session.SetDetails(d)
	return nil
}

func (s *shell) count(args []string) error {
	if len(args) != 3 {
		return usage("count TYPE DENOM QTY")
	}
	t, err := drawer.ParseEntryType(args[0])
	if err != nil {
		return err
	}
	if t == drawer.EntryReceipt {
		return fmt.Errorf("%w: use receipt add for receipts", drawer.ErrInvalidEntryType)
	}
	d, err := parseAmount(args[1])
	if err != nil {
		return err
	}
	n, err := parseQuantity(args[2])
	if err != nil {
		return err
	}
	if err := s.session.UpdateEntry(t, d, n); err != nil {
		return err
	}
	s.total()
	return nil
}

func (s *shell) receipt(args []string) error {
	if len(args) != 2 {
		return usage("receipt add|remove AMOUNT")
	}
	d, err := parseAmount(args[1])
	if err != nil {
		return err
	}
	switch strings.ToLower(args[0]) {
	case "add":
		err = s.session.AddReceipt(d)
	case "remove", "rm":
		err = s.session.RemoveReceipt(d)
	default:
		return usage("receipt add|remove AMOUNT")
	}
	if err != nil {
		return err
	}
	s.total()
	return nil
}

func (s *shell) drop(args []string) error {
	if len(args) != 1 {
		return usage("drop AMOUNT")
	}
	d, err := parseAmount(args[0])
	if err != nil {
		return err
	}
	if err := s.session.SetDrop(d); err != nil {
		return err
	}
	fmt.Fprintf(s.w, "Shift drop: %s\n", s.renderer.Money(d))
	return nil
}

func (s *shell) start(ctx context.Context) error {
	rec, err := s.session.StartShift(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.w, "Shift %s started at %s\nOpening balance: %s\n",
		rec.ID, formatTime(rec.OpenTime), s.renderer.Money(rec.OpeningBalance))
	return nil
}

func (s *shell) end(ctx context.Context) error {
	rec, err := s.session.EndShift(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.w, "Shift %s closed at %s\nClosing balance: %s\nVariance: %s\n",
		rec.ID, formatTime(*rec.CloseTime), s.renderer.Money(*rec.ClosingBalance), s.renderer.Money(*rec.Variance()))
	return nil
}

func (s *shell) save(ctx context.Context) error {
	if err := requireOpen(s.session); err != nil {
		return err
	}
	if err := s.session.SaveProgress(ctx); err != nil {
		return err
	}
	fmt.Fprintln(s.w, "Saved")
	return nil
}

func (s *shell) status() {
	if rec, ok := s.session.Active(); ok {
		rec.Entries = s.session.Entries()
		rec.ShiftDrop = s.session.Drop()
		fmt.Fprint(s.w, statusText(s.renderer, rec))
		return
	}

	d := s.session.Details()
	org := d.OrganizationName
	if org == "" {
		org = export.OrganizationLabel(drawer.ShiftRecord{})
	}
	fmt.Fprintln(s.w, "No open shift")
	fmt.Fprintf(s.w, "Organization:    %s\n", org)
	fmt.Fprintf(s.w, "Drawer:          %s\n", d.DrawerNumber)
	fmt.Fprintf(s.w, "Cashier:         %s\n", d.CashierName)
	fmt.Fprintln(s.w)
	fmt.Fprint(s.w, s.renderer.EntriesText(s.session.Entries()))
}

func (s *shell) total() {
	fmt.Fprintf(s.w, "Drawer total: %s\n", s.renderer.Money(s.session.Total()))
}

func (s *shell) history(ctx context.Context) error {
	recs, err := s.session.History(ctx)
	if err != nil {
		return err
	}
	fmt.Fprint(s.w, historyText(s.renderer, recs))
	return nil
}

func (s *shell) show(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("show ID")
	}
	rec, err := s.session.Shift(ctx, args[0])
	if err != nil {
		return err
	}
	return s.renderer.Shift(s.w, export.FormatText, rec)
}

func (s *shell) export(ctx context.Context, args []string) error {
	format := export.FormatText
	if len(args) > 0 {
		f, err := export.ParseFormat(args[0])
		if err != nil {
			return err
		}
		format = f
	}

	var buf bytes.Buffer
	if len(args) > 1 {
		rec, err := s.session.Shift(ctx, args[1])
		if err != nil {
			return err
		}
		if err := s.renderer.Shift(&buf, format, rec); err != nil {
			return err
		}
	} else {
		recs, err := s.session.History(ctx)
		if err != nil {
			return err
		}
		if err := s.renderer.History(&buf, format, recs); err != nil {
			return err
		}
	}
	_, err := s.w.Write(buf.Bytes())
	return err
}

func (s *shell) clearHistory(ctx context.Context) error {
	fmt.Fprint(s.w, clearPrompt)
	if !s.in.Scan() || !isYes(s.in.Text()) {
		fmt.Fprintln(s.w, "History not cleared")
		return nil
	}
	n, err := s.session.ClearHistory(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.w, "Cleared %d shifts from history\n", n)
	return nil
}

func (s *shell) denominations() {
	fmt.Fprint(s.w, denominationsText(s.renderer, s.session.Catalog()))
}
