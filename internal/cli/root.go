package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/cashdrawer/internal/config"
	"github.com/roach88/cashdrawer/internal/logging"
	"github.com/roach88/cashdrawer/internal/shift"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	Database   string
	ConfigPath string

	// Environment replaces the process environment for configuration when
	// non-nil (for testing).
	Environment map[string]string

	// Clock and IDs override the shift clock and id generator (for testing).
	// If nil, the system clock and UUIDv7 ids are used.
	Clock shift.Clock
	IDs   shift.IDGenerator

	cfg    *config.Config
	logger *slog.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the drawer CLI.
func NewRootCommand() *cobra.Command {
	return NewRootCommandWithOptions(&RootOptions{})
}

// NewRootCommandWithOptions creates the root command around opts.
func NewRootCommandWithOptions(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "drawer",
		Short: "Cash drawer reconciliation",
		Long: `Count a cash drawer, open and close shifts, and keep shift history.

Bills, coins, rolls and receipts are counted into the drawer total. A shift
records the opening balance when it starts and the closing balance and drop
when it ends. History is kept in a local SQLite file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return opts.setup(cmd)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Database, "db", "", "path to SQLite database (overrides config)")
	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to YAML config file")

	cmd.AddCommand(NewStartCommand(opts))
	cmd.AddCommand(NewCountCommand(opts))
	cmd.AddCommand(NewReceiptCommand(opts))
	cmd.AddCommand(NewDropCommand(opts))
	cmd.AddCommand(NewEndCommand(opts))
	cmd.AddCommand(NewStatusCommand(opts))
	cmd.AddCommand(NewHistoryCommand(opts))
	cmd.AddCommand(NewClearHistoryCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))
	cmd.AddCommand(NewDenominationsCommand(opts))
	cmd.AddCommand(NewShellCommand(opts))

	return cmd
}

// setup loads configuration and installs the logger.
func (o *RootOptions) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(config.LoadOptions{
		Path:        o.ConfigPath,
		Environment: o.Environment,
	})
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load config", err)
	}
	if o.Database != "" {
		cfg.Database = o.Database
	}

	level := cfg.LogLevel
	if o.Verbose {
		level = "debug"
	}
	o.logger = logging.Init(level, cfg.LogFormat, cmd.ErrOrStderr())
	o.cfg = cfg
	o.logger.Debug("config loaded", "database", cfg.Database, "config", o.ConfigPath)
	return nil
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
