// Package eval assembles accuracy reports from outline comparisons.
//
// [Compare] scores one candidate outline against its reference;
// [EvaluateFile] does the same for two serialized outlines on disk, and
// [Summarize] aggregates per-file reports into a batch summary. A file
// that cannot be read or parsed produces a report with its Error field
// set and zero accuracy; it never aborts a batch.
package eval

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tsawler/outliner/match"
	"github.com/tsawler/outliner/model"
)

// TitleReport describes how the candidate title compared to the reference.
type TitleReport struct {
	Expected   string  `json:"expected"`
	Actual     string  `json:"actual"`
	Match      bool    `json:"match"`
	Similarity float64 `json:"similarity"`
}

// HeadingReport describes how the candidate headings compared to the
// reference headings.
type HeadingReport struct {
	ExpectedCount  int               `json:"expected_count"`
	ActualCount    int               `json:"actual_count"`
	ExactMatches   int               `json:"exact_matches"`
	PartialMatches int               `json:"partial_matches"`
	TotalMatches   int               `json:"total_matches"`
	Accuracy       float64           `json:"accuracy"`
	Details        match.MatchResult `json:"details"`
}

// FileReport is the full evaluation result for one document.
type FileReport struct {
	FileName        string        `json:"file_name"`
	Error           string        `json:"error,omitempty"`
	Title           TitleReport   `json:"title"`
	Headings        HeadingReport `json:"headings"`
	OverallAccuracy float64       `json:"overall_accuracy"`
}

// Summary aggregates a batch of file reports.
type Summary struct {
	TotalFiles            int     `json:"total_files"`
	TitleAccuracy         float64 `json:"title_accuracy"`
	HeadingAccuracy       float64 `json:"heading_accuracy"`
	CombinedAccuracy      float64 `json:"combined_accuracy"`
	TotalExpectedHeadings int     `json:"total_expected_headings"`
	TotalMatchedHeadings  int     `json:"total_matched_headings"`
}

// Report is the persisted form of a batch evaluation.
type Report struct {
	Summary     Summary      `json:"summary"`
	FileResults []FileReport `json:"file_results"`
}

// Compare scores an actual outline against an expected one.
func Compare(fileName string, expected, actual model.Outline) FileReport {
	titleMatch, titleSimilarity := match.Titles(expected.Title, actual.Title)
	result := match.Headings(expected.Headings, actual.Headings)
	totalMatches := result.ExactMatches + result.PartialMatches

	accuracy := 0.0
	if len(expected.Headings) > 0 {
		accuracy = float64(totalMatches) / float64(len(expected.Headings))
	}

	return FileReport{
		FileName: fileName,
		Title: TitleReport{
			Expected:   expected.Title,
			Actual:     actual.Title,
			Match:      titleMatch,
			Similarity: titleSimilarity,
		},
		Headings: HeadingReport{
			ExpectedCount:  len(expected.Headings),
			ActualCount:    len(actual.Headings),
			ExactMatches:   result.ExactMatches,
			PartialMatches: result.PartialMatches,
			TotalMatches:   totalMatches,
			Accuracy:       accuracy,
			Details:        result,
		},
		OverallAccuracy: (titleSimilarity + accuracy) / 2,
	}
}

// EvaluateFile compares two serialized outlines on disk: the reference at
// expectedPath and the candidate at actualPath. Read or parse failures are
// captured in the report's Error field with zero accuracy.
func EvaluateFile(expectedPath, actualPath string) FileReport {
	fileName := filepath.Base(expectedPath)

	expected, err := loadOutline(expectedPath)
	if err != nil {
		return errorReport(fileName, err)
	}
	actual, err := loadOutline(actualPath)
	if err != nil {
		return errorReport(fileName, err)
	}

	return Compare(fileName, expected, actual)
}

// Summarize aggregates file reports into a batch summary. Files that
// errored count toward the total but contribute no matches.
func Summarize(results []FileReport) Summary {
	s := Summary{TotalFiles: len(results)}

	titleMatches := 0
	for _, r := range results {
		if r.Error != "" {
			continue
		}
		if r.Title.Match {
			titleMatches++
		}
		s.TotalExpectedHeadings += r.Headings.ExpectedCount
		s.TotalMatchedHeadings += r.Headings.TotalMatches
	}

	if s.TotalFiles > 0 {
		s.TitleAccuracy = float64(titleMatches) / float64(s.TotalFiles)
	}
	if s.TotalExpectedHeadings > 0 {
		s.HeadingAccuracy = float64(s.TotalMatchedHeadings) / float64(s.TotalExpectedHeadings)
	}
	s.CombinedAccuracy = (s.TitleAccuracy + s.HeadingAccuracy) / 2

	return s
}

func loadOutline(path string) (model.Outline, error) {
	var outline model.Outline
	data, err := os.ReadFile(path)
	if err != nil {
		return outline, fmt.Errorf("read outline: %w", err)
	}
	if err := json.Unmarshal(data, &outline); err != nil {
		return outline, fmt.Errorf("parse outline %s: %w", filepath.Base(path), err)
	}
	return outline, nil
}

func errorReport(fileName string, err error) FileReport {
	return FileReport{
		FileName: fileName,
		Error:    err.Error(),
	}
}
