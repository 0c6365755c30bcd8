// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paperforge/internal/ledger"
)

// historyCmd lists recent pipeline runs from the run ledger.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent paper runs",
	Long: `History lists recent runs recorded in the run ledger: when each ran,
its topic, whether it was a create or a revise round, how it ended, and
which HTML document it produced. Completed runs whose research degraded
are marked with an asterisk.`,
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	asJSON, _ := cmd.Flags().GetBool("json")

	cfg := pipelineConfig()
	store, err := ledger.Open(cfg.Ledger)
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.Recent(context.Background(), limit)
	if err != nil {
		return err
	}

	if asJSON {
		return ledger.FormatJSON(entries, cmd.OutOrStdout())
	}
	ledger.FormatTable(entries, cmd.OutOrStdout())
	return nil
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum runs to list")
	historyCmd.Flags().Bool("json", false, "output as JSON")

	rootCmd.AddCommand(historyCmd)
}
