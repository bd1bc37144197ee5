package drawer

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func closedShift() ShiftRecord {
	open := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	closeTime := open.Add(8 * time.Hour)
	closing := d("412.35")
	return ShiftRecord{
		ID:             "shift-1",
		DrawerNumber:   "12",
		CashierName:    "Alice",
		OpenTime:       open,
		CloseTime:      &closeTime,
		OpeningBalance: d("200"),
		ClosingBalance: &closing,
		ShiftDrop:      d("200"),
		Entries: []CashEntry{
			{Type: EntryBill, Denomination: d("20"), Quantity: 3},
		},
		Status: StatusClosed,
	}
}

func TestShiftRecord_Variance(t *testing.T) {
	s := closedShift()
	v := s.Variance()
	require.NotNil(t, v)
	assert.Equal(t, "12.35", v.String())

	s.ClosingBalance = nil
	assert.Nil(t, s.Variance())
}

func TestShiftRecord_Duration(t *testing.T) {
	s := closedShift()
	assert.Equal(t, 8*time.Hour, s.Duration())

	s.CloseTime = nil
	assert.Zero(t, s.Duration())
}

func TestShiftRecord_CloneIsDeep(t *testing.T) {
	s := closedShift()
	c := s.Clone()

	c.Entries[0].Quantity = 99
	*c.CloseTime = c.CloseTime.Add(time.Hour)
	*c.ClosingBalance = d("1")

	assert.Equal(t, 3, s.Entries[0].Quantity)
	assert.Equal(t, 8*time.Hour, s.Duration())
	assert.Equal(t, "412.35", s.ClosingBalance.String())
}

func TestParseStatus(t *testing.T) {
	st, err := ParseStatus("open")
	require.NoError(t, err)
	assert.Equal(t, StatusOpen, st)

	_, err = ParseStatus("pending")
	assert.Error(t, err)
}

func TestValidationError_IsErrValidation(t *testing.T) {
	err := &ValidationError{Fields: []FieldError{{Field: "drawer number", Rule: "required"}}}
	assert.True(t, errors.Is(err, ErrValidation))
	assert.Equal(t, "validation error: drawer number is required", err.Error())
}
