package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/roach88/cashdrawer/internal/drawer"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func closedFixture() drawer.ShiftRecord {
	open := time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC)
	closeTime := open.Add(8 * time.Hour)
	closing := d("272.25")
	return drawer.ShiftRecord{
		ID:             "shift-0001",
		DrawerNumber:   "12",
		CashierName:    "Alice",
		OpenTime:       open,
		CloseTime:      &closeTime,
		OpeningBalance: d("150"),
		ClosingBalance: &closing,
		ShiftDrop:      d("100"),
		Entries: []drawer.CashEntry{
			{Type: drawer.EntryBill, Denomination: d("50"), Quantity: 3},
			{Type: drawer.EntryBill, Denomination: d("20"), Quantity: 5},
			{Type: drawer.EntryCoin, Denomination: d("0.25"), Quantity: 8},
			{Type: drawer.EntryRoll, Denomination: d("10"), Quantity: 1},
			{Type: drawer.EntryReceipt, Denomination: d("10.25"), Quantity: 1},
		},
		Status: drawer.StatusClosed,
	}
}

func openFixture() drawer.ShiftRecord {
	return drawer.ShiftRecord{
		ID:               "shift-0002",
		OrganizationName: "Corner Market",
		DrawerNumber:     "3",
		CashierName:      "Bob",
		OpenTime:         time.Date(2026, 5, 5, 8, 30, 0, 0, time.UTC),
		OpeningBalance:   d("150"),
		ShiftDrop:        decimal.Zero,
		Entries: []drawer.CashEntry{
			{Type: drawer.EntryBill, Denomination: d("50"), Quantity: 3},
		},
		Status: drawer.StatusOpen,
	}
}

func newGoldie(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestShiftText_Closed(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewRenderer("$").Shift(&buf, FormatText, closedFixture()))

	newGoldie(t).Assert(t, "shift_closed", buf.Bytes())
}

func TestShiftText_Open(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewRenderer("$").Shift(&buf, FormatText, openFixture()))

	newGoldie(t).Assert(t, "shift_open", buf.Bytes())
}

func TestHistoryText(t *testing.T) {
	var buf bytes.Buffer
	recs := []drawer.ShiftRecord{openFixture(), closedFixture()}
	require.NoError(t, NewRenderer("$").History(&buf, FormatText, recs))

	newGoldie(t).Assert(t, "history", buf.Bytes())
}

func TestHistoryText_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewRenderer("$").History(&buf, FormatText, nil))
	assert.Equal(t, "No shift history available\n", buf.String())
}

func TestHistoryJSON(t *testing.T) {
	var buf bytes.Buffer
	recs := []drawer.ShiftRecord{openFixture(), closedFixture()}
	require.NoError(t, NewRenderer("$").History(&buf, FormatJSON, recs))

	newGoldie(t).Assert(t, "history_json", buf.Bytes())
}

func TestHistoryJSON_EmptyIsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewRenderer("$").History(&buf, FormatJSON, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestShiftYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewRenderer("$").Shift(&buf, FormatYAML, closedFixture()))

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "shift-0001", doc["id"])
	assert.Equal(t, "closed", doc["status"])
	assert.Equal(t, "272.25", doc["closing_balance"])
	assert.Equal(t, "22.25", doc["variance"])
	assert.Equal(t, "2026-05-04T09:00:00Z", doc["open_time"])
	assert.NotContains(t, doc, "organization")

	entries, ok := doc["entries"].([]any)
	require.True(t, ok)
	require.Len(t, entries, 5)
	first := entries[0].(map[string]any)
	assert.Equal(t, "bill", first["type"])
	assert.Equal(t, "50.00", first["denomination"])
	assert.Equal(t, 3, first["quantity"])
	assert.Equal(t, "150.00", first["total"])
}

func TestHistoryYAML(t *testing.T) {
	var buf bytes.Buffer
	recs := []drawer.ShiftRecord{openFixture(), closedFixture()}
	require.NoError(t, NewRenderer("$").History(&buf, FormatYAML, recs))

	var doc struct {
		Shifts []struct {
			ID             string `yaml:"id"`
			Organization   string `yaml:"organization"`
			ClosingBalance string `yaml:"closing_balance"`
		} `yaml:"shifts"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Shifts, 2)
	assert.Equal(t, "shift-0002", doc.Shifts[0].ID)
	assert.Equal(t, "Corner Market", doc.Shifts[0].Organization)
	assert.Empty(t, doc.Shifts[0].ClosingBalance)
	assert.Equal(t, "272.25", doc.Shifts[1].ClosingBalance)
}

func TestMoney(t *testing.T) {
	r := NewRenderer("$")

	assert.Equal(t, "$0.00", r.Money(decimal.Zero))
	assert.Equal(t, "$0.10", r.Money(d("0.1")))
	assert.Equal(t, "$1,234.50", r.Money(d("1234.5")))
	assert.Equal(t, "-$12.35", r.Money(d("-12.35")))
	assert.Equal(t, "€5.00", NewRenderer("€").Money(d("5")))
}

func TestEntriesText_Empty(t *testing.T) {
	assert.Equal(t, "No entries\n", NewRenderer("$").EntriesText(nil))
}

func TestParseFormat(t *testing.T) {
	for _, in := range []string{"text", "JSON", " yaml "} {
		_, err := ParseFormat(in)
		assert.NoError(t, err, in)
	}
	_, err := ParseFormat("pdf")
	assert.Error(t, err)
}
