package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a resume as PDF and/or DOC",
	Long: `Reads a resume JSON document and writes one file per requested format.
Files are named {first}_{last}_resume.{ext} inside the output directory.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runExport,
}

var (
	exportConfigPath string
	exportInput      string
	exportFormats    []string
	exportOutDir     string
	exportVariant    string
	exportEngine     string
	exportChromePath string
	exportTimeout    string
	exportVerbose    bool
)

func init() {
	exportCmd.Flags().StringVar(&exportConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	exportCmd.Flags().StringVarP(&exportInput, "input", "i", "", "Path to resume JSON file")
	exportCmd.Flags().StringSliceVarP(&exportFormats, "format", "f", nil, "Export formats: pdf, doc (default pdf)")
	exportCmd.Flags().StringVarP(&exportOutDir, "out", "o", "", "Output directory (default current directory)")
	exportCmd.Flags().StringVar(&exportVariant, "variant", "", "Variant for documents that do not name one")
	exportCmd.Flags().StringVar(&exportEngine, "engine", "", "PDF engine: auto, drawn or raster")
	exportCmd.Flags().StringVar(&exportChromePath, "chrome", "", "Chromium binary for the raster engine (optional, defaults to CHROME_PATH or auto-detect)")
	exportCmd.Flags().StringVar(&exportTimeout, "timeout", "", "Upper bound for each export, e.g. 30s")
	exportCmd.Flags().BoolVarP(&exportVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(exportConfigPath)
	if err != nil {
		return err
	}

	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("input") {
		cfg.Input = exportInput
	}
	if cmd.Flags().Changed("format") {
		cfg.Formats = exportFormats
	}
	if cmd.Flags().Changed("out") {
		cfg.OutDir = exportOutDir
	}
	if cmd.Flags().Changed("variant") {
		cfg.Variant = exportVariant
	}
	if cmd.Flags().Changed("engine") {
		cfg.Engine = exportEngine
	}
	if cmd.Flags().Changed("chrome") {
		cfg.ChromePath = exportChromePath
	}
	if cmd.Flags().Changed("timeout") {
		cfg.ExportTimeout = exportTimeout
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = exportVerbose
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	variant, err := types.ParseVariant(cfg.Variant)
	if err != nil {
		return err
	}
	resume, err := loadResume(cfg.Input, variant)
	if err != nil {
		return err
	}

	formats, err := parseFormats(cfg.Formats)
	if err != nil {
		return err
	}

	exporter, err := newExporter(cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.OutDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	paths, artifacts, err := exportAll(cmd.Context(), exporter, resume, formats, cfg.OutDir, cfg.ExportTimeoutDuration())
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())
	for i, art := range artifacts {
		if cfg.Verbose {
			printer.PrintArtifact(art, paths[i])
			continue
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", paths[i])
	}
	return nil
}

// parseFormats converts format names into Formats, dropping duplicates
// and keeping first-seen order.
func parseFormats(names []string) ([]export.Format, error) {
	seen := make(map[export.Format]bool)
	var formats []export.Format
	for _, name := range names {
		f, err := export.ParseFormat(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		if seen[f] {
			continue
		}
		seen[f] = true
		formats = append(formats, f)
	}
	if len(formats) == 0 {
		return nil, fmt.Errorf("at least one export format is required")
	}
	return formats, nil
}

func newExporter(cfg config.Config) (*export.Exporter, error) {
	engine, err := export.ParseEngine(cfg.Engine)
	if err != nil {
		return nil, err
	}
	return export.New(
		export.WithEngine(engine),
		export.WithHTMLRenderer(&export.ChromeRenderer{ExecPath: cfg.ChromePath, Timeout: cfg.ExportTimeoutDuration()}),
	), nil
}

// exportAll produces every format concurrently and writes each artifact
// into dir. The returned slices are in the order of formats.
func exportAll(ctx context.Context, exporter *export.Exporter, resume types.Resume, formats []export.Format, dir string, timeout time.Duration) ([]string, []*export.Artifact, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	paths := make([]string, len(formats))
	artifacts := make([]*export.Artifact, len(formats))

	g, gCtx := errgroup.WithContext(ctx)
	for i, format := range formats {
		g.Go(func() error {
			exportCtx := gCtx
			if timeout > 0 {
				var cancel context.CancelFunc
				exportCtx, cancel = context.WithTimeout(gCtx, timeout)
				defer cancel()
			}

			art, err := exporter.Export(exportCtx, resume, format)
			if err != nil {
				return fmt.Errorf("%s: %w", export.UserMessage(format), err)
			}

			path := filepath.Join(dir, art.FileName)
			if err := os.WriteFile(path, art.Data, 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
			paths[i] = path
			artifacts[i] = art
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return paths, artifacts, nil
}
