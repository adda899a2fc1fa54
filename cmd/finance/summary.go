package main

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"finance-tracker/internal/database"

	"github.com/spf13/cobra"
)

func summaryCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print the current month's dashboard as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := database.Initialize(cmd.Context(), opts.cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}
			defer db.Close()

			app := newApplication(db, nil, slog.Default())
			summary, err := app.dashboard.ComputeSummary(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to compute summary: %w", err)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(summary)
		},
	}
}
