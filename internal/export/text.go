package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/roach88/cashdrawer/internal/drawer"
)

const (
	timeLayout   = "2006-01-02 15:04 MST"
	missingValue = "---"
)

var groupTitles = map[drawer.EntryType]string{
	drawer.EntryBill:    "Bills",
	drawer.EntryCoin:    "Coins",
	drawer.EntryRoll:    "Rolls",
	drawer.EntryReceipt: "Receipts",
}

// OrganizationLabel returns the organization or a placeholder when unnamed.
func OrganizationLabel(rec drawer.ShiftRecord) string {
	if rec.OrganizationName == "" {
		return "Unnamed Organization"
	}
	return rec.OrganizationName
}

func (r *Renderer) shiftText(rec drawer.ShiftRecord) string {
	var b strings.Builder

	b.WriteString("Cash Drawer Shift Report\n")
	field(&b, "Organization", OrganizationLabel(rec))
	field(&b, "Shift", rec.ID)
	field(&b, "Drawer", rec.DrawerNumber)
	field(&b, "Cashier", rec.CashierName)
	field(&b, "Status", string(rec.Status))
	field(&b, "Opened", formatTime(rec.OpenTime))
	if rec.CloseTime != nil {
		field(&b, "Closed", formatTime(*rec.CloseTime))
		field(&b, "Duration", rec.Duration().String())
	}

	b.WriteString("\n")
	b.WriteString(r.EntriesText(rec.Entries))
	b.WriteString("\n")

	field(&b, "Opening Balance", r.Money(rec.OpeningBalance))
	closing, variance := missingValue, missingValue
	if rec.ClosingBalance != nil {
		closing = r.Money(*rec.ClosingBalance)
	}
	if v := rec.Variance(); v != nil {
		variance = r.Money(*v)
	}
	field(&b, "Closing Balance", closing)
	field(&b, "Shift Drop", r.Money(rec.ShiftDrop))
	field(&b, "Variance", variance)

	return b.String()
}

// EntriesText renders entries grouped by type, one line per entry.
func (r *Renderer) EntriesText(entries []drawer.CashEntry) string {
	if len(entries) == 0 {
		return "No entries\n"
	}

	var b strings.Builder
	for _, t := range drawer.EntryTypes {
		var lines []string
		for _, e := range entries {
			if e.Type != t {
				continue
			}
			desc := r.Money(e.Denomination)
			if t != drawer.EntryReceipt {
				desc = fmt.Sprintf("%s x %d", desc, e.Quantity)
			}
			lines = append(lines, fmt.Sprintf("  %-24s%12s\n", desc, r.Money(e.Total())))
		}
		if len(lines) == 0 {
			continue
		}
		b.WriteString(groupTitles[t] + "\n")
		for _, l := range lines {
			b.WriteString(l)
		}
	}
	fmt.Fprintf(&b, "  %-24s%12s\n", "Total", r.Money(drawer.SumEntries(entries)))
	return b.String()
}

func (r *Renderer) historyText(recs []drawer.ShiftRecord) string {
	if len(recs) == 0 {
		return "No shift history available\n"
	}

	var b strings.Builder
	noun := "shifts"
	if len(recs) == 1 {
		noun = "shift"
	}
	fmt.Fprintf(&b, "Shift History (%d %s)\n", len(recs), noun)
	for _, rec := range recs {
		b.WriteString("\n")
		b.WriteString(r.shiftText(rec))
	}
	return b.String()
}

func field(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "%-18s%s\n", label+":", value)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}
