// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/404kidwiz/credit-lift-nexus/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List or prune recorded smoke runs",
	Long: `History lists smoke runs recorded in the local run log, newest first.
Runs are only recorded when the smoke command is invoked with --record or
when history.enabled is set in the config.

Use --prune N to delete all but the newest N runs.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().Int("limit", 0, "maximum number of runs to list (default 20)")
	historyCmd.Flags().Bool("json", false, "output runs as JSON")
	historyCmd.Flags().Int("prune", -1, "delete all but the newest N runs")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	store, err := history.NewStore(historyConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	if keep, _ := cmd.Flags().GetInt("prune"); keep >= 0 {
		removed, err := store.Prune(context.Background(), keep)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Pruned %d run(s), kept newest %d.\n", removed, keep)
		return nil
	}

	limit, _ := cmd.Flags().GetInt("limit")
	runs, err := store.List(context.Background(), limit)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatHistoryOutput(runs, jsonOutput)
}

func formatHistoryOutput(runs []history.Run, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(runs)
	}

	if len(runs) == 0 {
		fmt.Println("No recorded runs.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-20s  %-40s  %-8s  %-6s  %s\n",
		"ID", "Started", "Target", "Outcome", "Status", "Latency")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 100))

	for _, r := range runs {
		status := "-"
		if r.StatusCode != 0 {
			status = fmt.Sprintf("%d", r.StatusCode)
		}
		fmt.Fprintf(os.Stdout, "%-4d  %-20s  %-40s  %-8s  %-6s  %s\n",
			r.ID,
			r.StartedAt.Local().Format("2006-01-02 15:04:05"),
			truncate(r.Target, 40),
			r.Outcome,
			status,
			r.Latency.Round(time.Millisecond),
		)
		if r.Error != "" {
			fmt.Fprintf(os.Stdout, "      error: %s\n", r.Error)
		}
	}
	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
