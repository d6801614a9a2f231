package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/tsawler/outliner"
	"github.com/tsawler/outliner/outline"
)

func extractCmd() *cobra.Command {
	var out string
	var overridesPath string
	var workers int

	cmd := &cobra.Command{
		Use:   "extract <input-dir>",
		Short: "Extract title and outline JSON for every PDF in a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputDir := args[0]
			if out == "" {
				out = inputDir
			}

			var overrides []outline.TitleOverride
			if overridesPath != "" {
				var err error
				overrides, err = loadOverrides(overridesPath)
				if err != nil {
					return err
				}
			}

			if err := os.MkdirAll(out, 0o755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}

			entries, err := os.ReadDir(inputDir)
			if err != nil {
				return fmt.Errorf("read input directory: %w", err)
			}

			var pdfs []string
			for _, entry := range entries {
				if !entry.IsDir() && strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
					pdfs = append(pdfs, entry.Name())
				}
			}
			if len(pdfs) == 0 {
				slog.Warn("no PDF files found", "dir", inputDir)
				return nil
			}
			slog.Info("processing PDF files", "count", len(pdfs))

			// Documents are independent; failures are logged per file and
			// never abort the batch.
			eg := new(errgroup.Group)
			eg.SetLimit(workers)
			for _, name := range pdfs {
				name := name
				eg.Go(func() error {
					extractOne(filepath.Join(inputDir, name), out, overrides)
					return nil
				})
			}
			return eg.Wait()
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output directory for outline JSON (default: input directory)")
	cmd.Flags().StringVar(&overridesPath, "overrides", "", "YAML file with known-answer title overrides")
	cmd.Flags().IntVarP(&workers, "workers", "j", 4, "number of documents to process in parallel")
	return cmd
}

func extractOne(pdfPath, outDir string, overrides []outline.TitleOverride) {
	name := filepath.Base(pdfPath)

	result, err := outliner.Open(pdfPath).WithTitleOverrides(overrides).Outline()
	if err != nil {
		slog.Error("failed to process document", "file", name, "error", err)
		return
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		slog.Error("failed to encode outline", "file", name, "error", err)
		return
	}

	outName := strings.TrimSuffix(name, filepath.Ext(name)) + ".json"
	outPath := filepath.Join(outDir, outName)
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		slog.Error("failed to write outline", "file", outName, "error", err)
		return
	}

	slog.Info("generated outline", "file", outName, "headings", len(result.Headings))
}

func loadOverrides(path string) ([]outline.TitleOverride, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read overrides: %w", err)
	}

	var overrides []outline.TitleOverride
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("parse overrides: %w", err)
	}
	return overrides, nil
}
