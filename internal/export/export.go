// Package export renders shift records as text reports, JSON or YAML.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/roach88/cashdrawer/internal/drawer"
)

// Format is an export document format.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the supported formats.
var Formats = []Format{FormatText, FormatJSON, FormatYAML}

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown export format %q: must be one of %v", s, Formats)
}

// Renderer writes shift documents.
type Renderer struct {
	symbol  string
	printer *message.Printer
}

// NewRenderer creates a renderer that prefixes amounts with symbol.
func NewRenderer(symbol string) *Renderer {
	return &Renderer{
		symbol:  symbol,
		printer: message.NewPrinter(language.English),
	}
}

// Money formats an amount with the currency symbol, two decimals and
// thousands grouping.
func (r *Renderer) Money(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	return sign + r.symbol + r.printer.Sprintf("%.2f", d.Round(2).InexactFloat64())
}

// Shift writes one shift in the given format.
func (r *Renderer) Shift(w io.Writer, format Format, rec drawer.ShiftRecord) error {
	switch format {
	case FormatText:
		_, err := io.WriteString(w, r.shiftText(rec))
		return err
	case FormatJSON:
		return writeJSON(w, rec)
	case FormatYAML:
		return writeYAML(w, toDoc(rec))
	}
	return fmt.Errorf("unknown export format %q", format)
}

// History writes a sequence of shifts in the given format.
func (r *Renderer) History(w io.Writer, format Format, recs []drawer.ShiftRecord) error {
	switch format {
	case FormatText:
		_, err := io.WriteString(w, r.historyText(recs))
		return err
	case FormatJSON:
		if recs == nil {
			recs = []drawer.ShiftRecord{}
		}
		return writeJSON(w, recs)
	case FormatYAML:
		docs := make([]shiftDoc, len(recs))
		for i, rec := range recs {
			docs[i] = toDoc(rec)
		}
		return writeYAML(w, historyDoc{Shifts: docs})
	}
	return fmt.Errorf("unknown export format %q", format)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
