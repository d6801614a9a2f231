package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tsawler/outliner/eval"
)

func evaluateCmd() *cobra.Command {
	var reportPath string

	cmd := &cobra.Command{
		Use:   "evaluate <expected-dir> <actual-dir>",
		Short: "Score actual outlines against expected ones and report accuracy",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			expectedDir, actualDir := args[0], args[1]

			names, err := jsonFiles(expectedDir)
			if err != nil {
				return err
			}

			var results []eval.FileReport
			for _, name := range names {
				actualPath := filepath.Join(actualDir, name)
				if _, err := os.Stat(actualPath); err != nil {
					continue
				}
				result := eval.EvaluateFile(filepath.Join(expectedDir, name), actualPath)
				results = append(results, result)
				printFileReport(cmd, result)
			}

			summary := eval.Summarize(results)
			printSummary(cmd, summary)

			if reportPath != "" {
				report := eval.Report{Summary: summary, FileResults: results}
				data, err := json.MarshalIndent(report, "", "  ")
				if err != nil {
					return fmt.Errorf("encode report: %w", err)
				}
				if err := os.WriteFile(reportPath, data, 0o644); err != nil {
					return fmt.Errorf("write report: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "\nDetailed results saved to: %s\n", reportPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&reportPath, "report", "r", "", "write the detailed JSON report to this file")
	return cmd
}

func jsonFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".json") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

func printFileReport(cmd *cobra.Command, r eval.FileReport) {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "\n=== %s ===\n", strings.TrimSuffix(r.FileName, ".json"))

	if r.Error != "" {
		fmt.Fprintf(w, "Error: %s\n", r.Error)
		return
	}

	fmt.Fprintf(w, "Title match: %v (similarity %.2f)\n", r.Title.Match, r.Title.Similarity)
	fmt.Fprintf(w, "  Expected: %q\n", r.Title.Expected)
	fmt.Fprintf(w, "  Actual:   %q\n", r.Title.Actual)

	h := r.Headings
	fmt.Fprintf(w, "Headings: %d expected, %d actual, %d exact + %d partial (%.1f%%)\n",
		h.ExpectedCount, h.ActualCount, h.ExactMatches, h.PartialMatches, h.Accuracy*100)

	if len(h.Details.UnmatchedExpected) > 0 {
		fmt.Fprintln(w, "Unmatched expected headings:")
		for _, heading := range h.Details.UnmatchedExpected {
			fmt.Fprintf(w, "  - %s (%s)\n", heading.Text, heading.Level)
		}
	}
	if len(h.Details.UnmatchedActual) > 0 {
		fmt.Fprintln(w, "Unmatched actual headings:")
		for _, heading := range h.Details.UnmatchedActual {
			fmt.Fprintf(w, "  - %s (%s)\n", heading.Text, heading.Level)
		}
	}
}

func printSummary(cmd *cobra.Command, s eval.Summary) {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "\n=== Overall accuracy ===\n")
	fmt.Fprintf(w, "Files evaluated:    %d\n", s.TotalFiles)
	fmt.Fprintf(w, "Title accuracy:     %.1f%%\n", s.TitleAccuracy*100)
	fmt.Fprintf(w, "Headings expected:  %d\n", s.TotalExpectedHeadings)
	fmt.Fprintf(w, "Headings matched:   %d\n", s.TotalMatchedHeadings)
	fmt.Fprintf(w, "Heading accuracy:   %.1f%%\n", s.HeadingAccuracy*100)
	fmt.Fprintf(w, "Combined accuracy:  %.1f%%\n", s.CombinedAccuracy*100)
}
