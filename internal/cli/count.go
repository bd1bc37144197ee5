package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/cashdrawer/internal/drawer"
)

// entryView is the JSON payload after a change to the open shift.
type entryView struct {
	ID      string             `json:"id"`
	Entries []drawer.CashEntry `json:"entries"`
	Total   string             `json:"total"`
	Drop    string             `json:"shiftDrop"`
}

// NewCountCommand creates the count command.
func NewCountCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "count TYPE DENOMINATION QUANTITY",
		Short: "Set the counted quantity of a bill, coin or roll on the open shift",
		Long: `Set the quantity for one denomination on the open shift and save it.
A quantity of 0 removes the entry.`,
		Example: `  drawer count bill 20 5
  drawer count coin 0.25 40
  drawer count roll 10 0`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutate(cmd, rootOpts, "record the count", func(e *env) error {
				t, err := drawer.ParseEntryType(args[0])
				if err != nil {
					return err
				}
				if t == drawer.EntryReceipt {
					return fmt.Errorf("%w: use the receipt command for receipts", drawer.ErrInvalidEntryType)
				}
				d, err := parseAmount(args[1])
				if err != nil {
					return err
				}
				n, err := parseQuantity(args[2])
				if err != nil {
					return err
				}
				return e.session.UpdateEntry(t, d, n)
			})
		},
	}
}

// NewReceiptCommand creates the receipt command group.
func NewReceiptCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "receipt",
		Short: "Add or remove receipts on the open shift",
	}

	cmd.AddCommand(&cobra.Command{
		Use:     "add AMOUNT",
		Short:   "Add a receipt",
		Example: "  drawer receipt add 10.25",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutate(cmd, rootOpts, "record the receipt", func(e *env) error {
				d, err := parseAmount(args[0])
				if err != nil {
					return err
				}
				return e.session.AddReceipt(d)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:     "remove AMOUNT",
		Short:   "Remove a receipt",
		Example: "  drawer receipt remove 10.25",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutate(cmd, rootOpts, "remove the receipt", func(e *env) error {
				d, err := parseAmount(args[0])
				if err != nil {
					return err
				}
				return e.session.RemoveReceipt(d)
			})
		},
	})

	return cmd
}

// NewDropCommand creates the drop command.
func NewDropCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "drop AMOUNT",
		Short:   "Set the amount dropped from the drawer during the open shift",
		Example: "  drawer drop 100",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutate(cmd, rootOpts, "record the drop", func(e *env) error {
				d, err := parseAmount(args[0])
				if err != nil {
					return err
				}
				return e.session.SetDrop(d)
			})
		},
	}
}

// mutate applies change to the open shift and saves it.
func mutate(cmd *cobra.Command, opts *RootOptions, action string, change func(*env) error) error {
	ctx := cmd.Context()
	e, err := opts.open(ctx, cmd)
	if err != nil {
		return err
	}
	defer e.close()

	if err := requireOpen(e.session); err != nil {
		return opts.fail(e.out, action, err)
	}
	if err := change(e); err != nil {
		return opts.fail(e.out, action, err)
	}
	if err := e.session.SaveProgress(ctx); err != nil {
		return opts.fail(e.out, "save the shift", err)
	}

	rec, _ := e.session.Active()
	view := entryView{
		ID:      rec.ID,
		Entries: e.session.Entries(),
		Total:   e.session.Total().StringFixed(2),
		Drop:    e.session.Drop().StringFixed(2),
	}
	text := fmt.Sprintf("Drawer total: %s\n", e.renderer.Money(e.session.Total()))
	return e.out.Success(view, text)
}
