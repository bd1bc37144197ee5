package export

import (
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/roach88/cashdrawer/internal/drawer"
)

type historyDoc struct {
	Shifts []shiftDoc `yaml:"shifts"`
}

type shiftDoc struct {
	ID             string     `yaml:"id"`
	Organization   string     `yaml:"organization,omitempty"`
	Drawer         string     `yaml:"drawer"`
	Cashier        string     `yaml:"cashier"`
	Status         string     `yaml:"status"`
	OpenTime       string     `yaml:"open_time"`
	CloseTime      string     `yaml:"close_time,omitempty"`
	OpeningBalance string     `yaml:"opening_balance"`
	ClosingBalance string     `yaml:"closing_balance,omitempty"`
	ShiftDrop      string     `yaml:"shift_drop"`
	Variance       string     `yaml:"variance,omitempty"`
	Entries        []entryDoc `yaml:"entries"`
}

type entryDoc struct {
	Type         string `yaml:"type"`
	Denomination string `yaml:"denomination"`
	Quantity     int    `yaml:"quantity"`
	Total        string `yaml:"total"`
}

func toDoc(rec drawer.ShiftRecord) shiftDoc {
	doc := shiftDoc{
		ID:             rec.ID,
		Organization:   rec.OrganizationName,
		Drawer:         rec.DrawerNumber,
		Cashier:        rec.CashierName,
		Status:         string(rec.Status),
		OpenTime:       rec.OpenTime.UTC().Format(time.RFC3339),
		OpeningBalance: rec.OpeningBalance.StringFixed(2),
		ShiftDrop:      rec.ShiftDrop.StringFixed(2),
		Entries:        make([]entryDoc, len(rec.Entries)),
	}
	if rec.CloseTime != nil {
		doc.CloseTime = rec.CloseTime.UTC().Format(time.RFC3339)
	}
	if rec.ClosingBalance != nil {
		doc.ClosingBalance = rec.ClosingBalance.StringFixed(2)
	}
	if v := rec.Variance(); v != nil {
		doc.Variance = v.StringFixed(2)
	}
	for i, e := range rec.Entries {
		doc.Entries[i] = entryDoc{
			Type:         string(e.Type),
			Denomination: e.Denomination.StringFixed(2),
			Quantity:     e.Quantity,
			Total:        e.Total().StringFixed(2),
		}
	}
	return doc
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return nil
}
