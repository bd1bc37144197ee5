package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/roach88/cashdrawer/internal/shift"
	"github.com/roach88/cashdrawer/internal/testutil"
)

var t0 = time.Date(2026, 6, 1, 7, 30, 0, 0, time.UTC)

// testCLI runs commands against one temp database with a fixed clock and ids.
type testCLI struct {
	t    *testing.T
	opts *RootOptions
	db   string
}

func newTestCLI(t *testing.T, env map[string]string) *testCLI {
	t.Helper()
	if env == nil {
		env = map[string]string{}
	}
	return &testCLI{
		t: t,
		opts: &RootOptions{
			Environment: env,
			Clock:       testutil.NewFixedClock(t0, time.Hour),
			IDs:         shift.NewFixedGenerator("shift-1", "shift-2", "shift-3"),
		},
		db: filepath.Join(t.TempDir(), "drawer.db"),
	}
}

type result struct {
	stdout string
	stderr string
	err    error
}

func (c *testCLI) run(args ...string) result {
	return c.runWithInput("", args...)
}

func (c *testCLI) runWithInput(stdin string, args ...string) result {
	c.t.Helper()
	cmd := NewRootCommandWithOptions(c.opts)
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(append([]string{"--db", c.db}, args...))
	err := cmd.Execute()
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
