package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"snapsort/internal/deps"
	"snapsort/internal/history"
	"snapsort/internal/logging"
	"snapsort/internal/organize"
)

func newOrganizeCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "organize [source-dir]",
		Short: "Resolve dates and move media files into <root>/<YYYY>/<MM>_<MON>",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			source, err := sourceArgument(cmd, args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, status := range deps.CheckBinaries(deps.Requirements(cfg)) {
				if !status.Available {
					fmt.Fprintf(out, "Note: %s unavailable (%s); videos will fall back to filesystem timestamps\n",
						status.Name, status.Detail)
				}
			}

			journal, err := history.Open(cfg.HistoryDBPath())
			if err != nil {
				logger.Warn("run history unavailable", logging.Error(err))
				journal = nil
			}
			if journal != nil {
				defer journal.Close()
			}

			runner := organize.NewRunner(cfg, logger, journal)
			result, err := runner.Run(cmd.Context(), organize.Options{Source: source, DryRun: dryRun})
			if err != nil {
				if errors.Is(err, organize.ErrNoMatches) {
					return fmt.Errorf("nothing to do: %w", err)
				}
				return err
			}

			printSummary(out, result.Summary)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Report intended moves without touching the filesystem")
	return cmd
}

// sourceArgument returns the source folder from args, prompting on stdin
// when it was omitted.
func sourceArgument(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 && strings.TrimSpace(args[0]) != "" {
		return strings.TrimSpace(args[0]), nil
	}

	fmt.Fprint(cmd.OutOrStdout(), "Source directory: ")
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read source directory: %w", err)
	}
	source := strings.TrimSpace(line)
	if source == "" {
		return "", errors.New("source directory is required")
	}
	return source, nil
}

func printSummary(out io.Writer, summary organize.Summary) {
	rows := [][]string{
		{"Processed", strconv.Itoa(summary.Processed)},
		{"Moved", strconv.Itoa(summary.Moved)},
		{"Skipped", strconv.Itoa(summary.Skipped)},
		{"Failed", strconv.Itoa(summary.Failed)},
		{"With metadata", strconv.Itoa(summary.WithMetadata)},
		{"Without metadata", strconv.Itoa(summary.WithoutMetadata)},
	}
	fmt.Fprintln(out, renderTable([]string{"Result", "Count"}, rows, []columnAlignment{alignLeft, alignRight}))
	if summary.DryRun {
		fmt.Fprintln(out, "Dry run: no files were moved.")
	}
}
