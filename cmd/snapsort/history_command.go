package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"snapsort/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var runID string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent organize runs from the journal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			journal, err := history.Open(cfg.HistoryDBPath())
			if err != nil {
				return fmt.Errorf("open run history: %w", err)
			}
			defer journal.Close()

			if runID != "" {
				return printRunFiles(cmd, journal, runID)
			}
			return printRecentRuns(cmd, journal, limit)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of runs to show")
	cmd.Flags().StringVar(&runID, "run", "", "Show per-file records for one run ID")
	return cmd
}

func printRecentRuns(cmd *cobra.Command, journal *history.Store, limit int) error {
	runs, err := journal.RecentRuns(cmd.Context(), limit)
	if err != nil {
		return fmt.Errorf("load runs: %w", err)
	}
	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded yet.")
		return nil
	}

	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		mode := "move"
		if run.DryRun {
			mode = "dry-run"
		}
		rows = append(rows, []string{
			run.ID,
			run.StartedAt.Local().Format("2006-01-02 15:04:05"),
			run.SourceRoot,
			mode,
			strconv.Itoa(run.Processed),
			strconv.Itoa(run.Moved),
			strconv.Itoa(run.Skipped),
			strconv.Itoa(run.Failed),
		})
	}

	headers := []string{"Run", "Started", "Source", "Mode", "Files", "Moved", "Skipped", "Failed"}
	aligns := []columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable(headers, rows, aligns))
	return nil
}

func printRunFiles(cmd *cobra.Command, journal *history.Store, runID string) error {
	files, err := journal.RunFiles(cmd.Context(), runID)
	if err != nil {
		return fmt.Errorf("load run files: %w", err)
	}
	if len(files) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No records for run %s.\n", runID)
		return nil
	}

	rows := make([][]string, 0, len(files))
	for _, record := range files {
		rows = append(rows, []string{
			record.SourcePath,
			record.ResolvedDate.Format("2006-01-02"),
			record.DateSource,
			record.Outcome,
			record.TargetPath,
		})
	}

	headers := []string{"Source", "Date", "Via", "Outcome", "Target"}
	aligns := []columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable(headers, rows, aligns))
	return nil
}
