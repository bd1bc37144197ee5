package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/roach88/cashdrawer/internal/drawer"
	"github.com/roach88/cashdrawer/internal/export"
)

const timeLayout = "2006-01-02 15:04 MST"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// statusView is the JSON payload of the status command.
type statusView struct {
	Active  *drawer.ShiftRecord `json:"active"`
	Entries []drawer.CashEntry  `json:"entries"`
	Total   string              `json:"total"`
	Drop    string              `json:"shiftDrop"`
}

// NewStatusCommand creates the status command.
func NewStatusCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the open shift, its entries and the drawer total",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := rootOpts.open(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer e.close()

			view := statusView{
				Entries: e.session.Entries(),
				Total:   e.session.Total().StringFixed(2),
				Drop:    e.session.Drop().StringFixed(2),
			}
			rec, ok := e.session.Active()
			if !ok {
				return e.out.Success(view, "No open shift\n")
			}
			view.Active = &rec
			return e.out.Success(view, statusText(e.renderer, rec))
		},
	}
}

func statusText(r *export.Renderer, rec drawer.ShiftRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Shift %s open since %s\n", rec.ID, formatTime(rec.OpenTime))
	fmt.Fprintf(&b, "Organization:    %s\n", export.OrganizationLabel(rec))
	fmt.Fprintf(&b, "Drawer:          %s\n", rec.DrawerNumber)
	fmt.Fprintf(&b, "Cashier:         %s\n", rec.CashierName)
	fmt.Fprintf(&b, "Opening balance: %s\n", r.Money(rec.OpeningBalance))
	fmt.Fprintf(&b, "Shift drop:      %s\n", r.Money(rec.ShiftDrop))
	b.WriteString("\n")
	b.WriteString(r.EntriesText(rec.Entries))
	return b.String()
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List stored shifts, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := rootOpts.open(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer e.close()

			recs, err := e.session.History(cmd.Context())
			if err != nil {
				return rootOpts.fail(e.out, "load shift history", err)
			}
			return e.out.Success(recs, historyText(e.renderer, recs))
		},
	}
}

func historyText(r *export.Renderer, recs []drawer.ShiftRecord) string {
	if len(recs) == 0 {
		return "No shift history available\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-36s  %-6s  %-8s  %-16s  %-20s  %12s  %12s\n",
		"ID", "STATUS", "DRAWER", "CASHIER", "OPENED", "OPENING", "CLOSING")
	for _, rec := range recs {
		closing := "---"
		if rec.ClosingBalance != nil {
			closing = r.Money(*rec.ClosingBalance)
		}
		fmt.Fprintf(&b, "%-36s  %-6s  %-8s  %-16s  %-20s  %12s  %12s\n",
			rec.ID, rec.Status, rec.DrawerNumber, rec.CashierName,
			formatTime(rec.OpenTime), r.Money(rec.OpeningBalance), closing)
	}
	return b.String()
}

// NewDenominationsCommand creates the denominations command.
func NewDenominationsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "denominations",
		Short: "List the bill, coin and roll denominations that can be counted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := rootOpts.formatter(cmd)
			r := export.NewRenderer(rootOpts.cfg.CurrencySymbol)
			catalog := rootOpts.cfg.Catalog()

			data := make(map[drawer.EntryType][]string)
			for _, t := range countedTypes {
				data[t] = fixed(catalog.For(t))
			}
			return f.Success(data, denominationsText(r, catalog))
		},
	}
}

var countedTypes = []drawer.EntryType{drawer.EntryBill, drawer.EntryCoin, drawer.EntryRoll}

func denominationsText(r *export.Renderer, catalog drawer.Catalog) string {
	var b strings.Builder
	for _, t := range countedTypes {
		denoms := catalog.For(t)
		shown := make([]string, len(denoms))
		for i, d := range denoms {
			shown[i] = r.Money(d)
		}
		fmt.Fprintf(&b, "%-8s%s\n", string(t)+":", strings.Join(shown, ", "))
	}
	return b.String()
}

func fixed(ds []decimal.Decimal) []string {
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.StringFixed(2)
	}
	return out
}
