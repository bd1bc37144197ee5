package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

const clearPrompt = "Are you sure you want to clear all shift history? This cannot be undone. [y/N]: "

// NewClearHistoryCommand creates the clear-history command.
func NewClearHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear-history",
		Short: "Delete every closed shift",
		Long: `Delete every closed shift from history. The open shift, if any, is kept.
Asks for confirmation unless --yes is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := rootOpts.open(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer e.close()

			if !yes {
				fmt.Fprint(cmd.ErrOrStderr(), clearPrompt)
				if !confirm(bufio.NewReader(cmd.InOrStdin())) {
					return e.out.Success(map[string]int{"removed": 0}, "History not cleared\n")
				}
			}

			n, err := e.session.ClearHistory(cmd.Context())
			if err != nil {
				return rootOpts.fail(e.out, "clear history", err)
			}
			return e.out.Success(map[string]int{"removed": n}, fmt.Sprintf("Cleared %d shifts from history\n", n))
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

// confirm reads one answer line. Only y or yes confirms.
func confirm(r *bufio.Reader) bool {
	line, err := r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return false
	}
	return isYes(line)
}

func isYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}
