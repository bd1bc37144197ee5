package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/cashdrawer/internal/shift"
)

// StartOptions holds flags for the start command.
type StartOptions struct {
	*RootOptions
	Drawer   string
	Cashier  string
	Org      string
	Counts   []string
	Receipts []string
}

// NewStartCommand creates the start command.
func NewStartCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &StartOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Open a shift with the counted drawer as opening balance",
		Long: `Open a new shift. The drawer total at start becomes the opening balance.

Counts are given as type:denomination=quantity, for example bill:20=5 or
coin:0.25=40. Receipts are given as amounts.`,
		Example: `  drawer start --drawer 12 --cashier Alice --count bill:50=3 --count coin:0.25=8
  drawer start --drawer 3 --cashier Bob --org "Corner Market" --receipt 10.25`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStart(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Drawer, "drawer", "", "drawer number")
	cmd.Flags().StringVar(&opts.Cashier, "cashier", "", "cashier name")
	cmd.Flags().StringVar(&opts.Org, "org", "", "organization name (defaults to config)")
	cmd.Flags().StringArrayVar(&opts.Counts, "count", nil, "entry as type:denomination=quantity (repeatable)")
	cmd.Flags().StringArrayVar(&opts.Receipts, "receipt", nil, "receipt amount (repeatable)")

	return cmd
}

func runStart(cmd *cobra.Command, opts *StartOptions) error {
	ctx := cmd.Context()
	e, err := opts.open(ctx, cmd)
	if err != nil {
		return err
	}
	defer e.close()

	org := opts.Org
	if org == "" {
		org = opts.cfg.Organization
	}
	e.session.SetDetails(shift.Details{
		OrganizationName: org,
		DrawerNumber:     opts.Drawer,
		CashierName:      opts.Cashier,
	})
	if err := applyCounts(e.session, opts.Counts); err != nil {
		return opts.fail(e.out, "record the count", err)
	}
	if err := applyReceipts(e.session, opts.Receipts); err != nil {
		return opts.fail(e.out, "record the receipt", err)
	}

	rec, err := e.session.StartShift(ctx)
	if err != nil {
		return opts.fail(e.out, "start the shift", err)
	}

	text := fmt.Sprintf("Shift %s started at %s\nOpening balance: %s\n",
		rec.ID, formatTime(rec.OpenTime), e.renderer.Money(rec.OpeningBalance))
	return e.out.Success(rec, text)
}
