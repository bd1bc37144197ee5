package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShell_CountBeforeStartThenClose(t *testing.T) {
	c := newTestCLI(t, nil)

	input := strings.Join([]string{
		"set drawer 7",
		"set cashier Dana Lee",
		"count bill 20 5",
		"receipt add 4.50",
		"start",
		"count coin 0.25 4",
		"drop 50",
		"end",
		"history",
		"quit",
	}, "\n") + "\n"

	res := c.runWithInput(input, "shell")
	require.NoError(t, res.err)
	out := res.stdout

	assert.True(t, strings.HasPrefix(out, shellPrompt))
	assert.Contains(t, out, "Drawer total: $100.00\n")
	assert.Contains(t, out, "Drawer total: $104.50\n")
	assert.Contains(t, out, "Shift shift-1 started at 2026-06-01 07:30 UTC\nOpening balance: $104.50\n")
	assert.Contains(t, out, "Drawer total: $105.50\n")
	assert.Contains(t, out, "Shift drop: $50.00\n")
	assert.Contains(t, out, "Shift shift-1 closed at 2026-06-01 08:30 UTC\nClosing balance: $105.50\nVariance: -$49.00\n")
	assert.Contains(t, out, "Dana Lee")
	assert.NotContains(t, out, "Error [")
}

func TestShell_ErrorsDoNotStopTheLoop(t *testing.T) {
	c := newTestCLI(t, nil)

	res := c.runWithInput("start\nbogus\ncount bill 3 1\nstatus\nquit\n", "shell")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Error [E001]: Please enter both drawer number and cashier name\n")
	assert.Contains(t, res.stdout, "Error [E005]: unknown command \"bogus\" (type help)\n")
	assert.Contains(t, res.stdout, "denomination not in catalog")
	assert.Contains(t, res.stdout, "No open shift\n")
	assert.Contains(t, res.stdout, "No entries\n")
}

func TestShell_ResumesAndSavesOpenShift(t *testing.T) {
	c := newTestCLI(t, nil)
	startAlice(t, c)

	res := c.runWithInput("count bill 10 1\nset drawer 9\nquit\n", "shell")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Resumed open shift shift-1 (drawer 12, Alice)\n")
	assert.Contains(t, res.stdout, "Drawer total: $162.00\n")
	assert.Contains(t, res.stdout, "Error [E003]")

	res = c.run("status")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Drawer:          12")
	assert.Contains(t, res.stdout, "$10.00 x 1")
}

func TestShell_SavesOnEOF(t *testing.T) {
	c := newTestCLI(t, nil)
	startAlice(t, c)

	res := c.runWithInput("receipt add 2.75", "shell")
	require.NoError(t, res.err)

	res = c.run("status")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "$2.75")
}

func TestShell_ClearHistoryAsksFirst(t *testing.T) {
	c := newTestCLI(t, nil)
	startAlice(t, c)
	require.NoError(t, c.run("end").err)

	input := "clear-history\nno\nhistory\nclear-history\ny\nhistory\nquit\n"
	res := c.runWithInput(input, "shell")
	require.NoError(t, res.err)

	out := res.stdout
	notCleared := strings.Index(out, "History not cleared")
	cleared := strings.Index(out, "Cleared 1 shifts from history")
	empty := strings.Index(out, "No shift history available")
	require.NotEqual(t, -1, notCleared)
	require.NotEqual(t, -1, cleared)
	require.NotEqual(t, -1, empty)
	assert.Less(t, notCleared, cleared)
	assert.Less(t, cleared, empty)
}

func TestShell_ShowAndExport(t *testing.T) {
	c := newTestCLI(t, nil)
	startAlice(t, c)
	require.NoError(t, c.run("end").err)

	res := c.runWithInput("show shift-1\nshow nope\nexport json\nexport csv\nquit\n", "shell")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Cash Drawer Shift Report")
	assert.Contains(t, res.stdout, "Error [E004]")
	assert.Contains(t, res.stdout, `"id": "shift-1"`)
	assert.Contains(t, res.stdout, "unknown export format")
}

func TestShell_HelpAndDenominations(t *testing.T) {
	c := newTestCLI(t, nil)

	res := c.runWithInput("help\ndenominations\nexit\n", "shell")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "count TYPE DENOM QTY")
	assert.Contains(t, res.stdout, "roll:   $10.00, $5.00, $2.00, $1.00, $0.50\n")
}
