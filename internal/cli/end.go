package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// EndOptions holds flags for the end command.
type EndOptions struct {
	*RootOptions
	Drop   string
	Counts []string
}

// NewEndCommand creates the end command.
func NewEndCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EndOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "end",
		Short: "Close the open shift with the counted drawer as closing balance",
		Long: `Close the open shift. The drawer total becomes the closing balance and the
shift moves into history. Counts given here are applied first.`,
		Example: `  drawer end --drop 100
  drawer end --count bill:20=12 --count coin:0.25=0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnd(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Drop, "drop", "", "amount dropped from the drawer during the shift")
	cmd.Flags().StringArrayVar(&opts.Counts, "count", nil, "entry as type:denomination=quantity (repeatable)")

	return cmd
}

func runEnd(cmd *cobra.Command, opts *EndOptions) error {
	ctx := cmd.Context()
	e, err := opts.open(ctx, cmd)
	if err != nil {
		return err
	}
	defer e.close()

	if err := requireOpen(e.session); err != nil {
		return opts.fail(e.out, "end the shift", err)
	}
	if err := applyCounts(e.session, opts.Counts); err != nil {
		return opts.fail(e.out, "record the count", err)
	}
	if opts.Drop != "" {
		d, err := parseAmount(opts.Drop)
		if err != nil {
			return opts.fail(e.out, "record the drop", err)
		}
		if err := e.session.SetDrop(d); err != nil {
			return opts.fail(e.out, "record the drop", err)
		}
	}

	rec, err := e.session.EndShift(ctx)
	if err != nil {
		return opts.fail(e.out, "end the shift", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Shift %s closed at %s\n", rec.ID, formatTime(*rec.CloseTime))
	fmt.Fprintf(&b, "Opening balance: %s\n", e.renderer.Money(rec.OpeningBalance))
	fmt.Fprintf(&b, "Closing balance: %s\n", e.renderer.Money(*rec.ClosingBalance))
	fmt.Fprintf(&b, "Shift drop:      %s\n", e.renderer.Money(rec.ShiftDrop))
	fmt.Fprintf(&b, "Variance:        %s\n", e.renderer.Money(*rec.Variance()))
	return e.out.Success(rec, b.String())
}
