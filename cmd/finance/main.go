package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"finance-tracker/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// rootOptions carries the configuration resolved before any subcommand runs.
type rootOptions struct {
	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "finance",
		Short: "Personal finance tracker",
		Long: `finance keeps income and expense entries, debts and investments in a
local database and serves a monthly dashboard over HTTP.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.load(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.String("log-level", "", "log level (debug, info, warn, error); overrides LOG_LEVEL")
	flags.String("log-format", "", "log format (text, json); overrides LOG_FORMAT")
	flags.String("db-path", "", "sqlite database file; overrides DB_PATH")

	cmd.AddCommand(serveCmd(opts))
	cmd.AddCommand(migrateCmd(opts))
	cmd.AddCommand(summaryCmd(opts))
	cmd.AddCommand(versionCmd())

	return cmd
}

// load reads the environment, applies flag overrides and installs the
// default logger.
func (o *rootOptions) load(cmd *cobra.Command) error {
	cfg := config.Load()

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Logging.Level, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-format") {
		cfg.Logging.Format, _ = flags.GetString("log-format")
	}
	if flags.Changed("db-path") {
		cfg.Database.Path, _ = flags.GetString("db-path")
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := setupLogging(cfg.Logging, cmd.ErrOrStderr()); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	o.cfg = cfg
	return nil
}

func setupLogging(cfg config.LoggingConfig, w io.Writer) error {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}

	var handler slog.Handler
	switch cfg.Format {
	case "text", "":
		handler = slog.NewTextHandler(w, opts)
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		return fmt.Errorf("invalid log format: %s", cfg.Format)
	}

	slog.SetDefault(slog.New(handler))
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "finance", version)
		},
	}
}
