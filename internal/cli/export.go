package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/cashdrawer/internal/export"
)

// ExportOptions holds flags for the export command.
type ExportOptions struct {
	*RootOptions
	ID         string
	As         string
	OutputPath string
}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export one shift or the whole history as a document",
		Long: `Export one shift (--id) or every stored shift as a text report, JSON or
YAML document. Writes to stdout unless -o is given.`,
		Example: `  drawer export --as yaml -o history.yaml
  drawer export --id 0190b4c4-8a7e-7c3a-9d51-2f0c1e6b9a10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.ID, "id", "", "export only the shift with this id")
	cmd.Flags().StringVar(&opts.As, "as", "text", "document format (text|json|yaml)")
	cmd.Flags().StringVarP(&opts.OutputPath, "output", "o", "", "output file path (default: stdout)")

	return cmd
}

func runExport(cmd *cobra.Command, opts *ExportOptions) error {
	ctx := cmd.Context()
	f := opts.formatter(cmd)

	format, err := export.ParseFormat(opts.As)
	if err != nil {
		return opts.fail(f, "export", err)
	}

	e, err := opts.open(ctx, cmd)
	if err != nil {
		return err
	}
	defer e.close()

	var (
		buf   bytes.Buffer
		count int
	)
	if opts.ID != "" {
		rec, err := e.session.Shift(ctx, opts.ID)
		if err != nil {
			return opts.fail(f, "load the shift", err)
		}
		err = e.renderer.Shift(&buf, format, rec)
		if err != nil {
			return opts.fail(f, "export", err)
		}
		count = 1
	} else {
		recs, err := e.session.History(ctx)
		if err != nil {
			return opts.fail(f, "load shift history", err)
		}
		if err := e.renderer.History(&buf, format, recs); err != nil {
			return opts.fail(f, "export", err)
		}
		count = len(recs)
	}

	if opts.OutputPath == "" {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}

	if err := os.WriteFile(opts.OutputPath, buf.Bytes(), 0o644); err != nil {
		return WrapExitError(ExitCommandError, "failed to write output file", err)
	}
	opts.log().Debug("export written", "path", opts.OutputPath, "shifts", count, "format", format)
	return f.Success(
		map[string]interface{}{"path": opts.OutputPath, "shifts": count},
		fmt.Sprintf("Exported %d %s to %s\n", count, plural(count), opts.OutputPath),
	)
}

func plural(n int) string {
	if n == 1 {
		return "shift"
	}
	return "shifts"
}
