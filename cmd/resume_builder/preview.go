package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/preview"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print the preview of a resume",
	Long:  "Builds the display tree of a resume JSON document and prints it as JSON, or as a standalone HTML page with --html.",
	RunE:  runPreview,
}

var (
	previewInput   string
	previewHTML    bool
	previewOutFile string
	previewVerbose bool
)

func init() {
	previewCmd.Flags().StringVarP(&previewInput, "input", "i", "", "Path to resume JSON file (required)")
	previewCmd.Flags().BoolVar(&previewHTML, "html", false, "Print the HTML preview page instead of the JSON display tree")
	previewCmd.Flags().StringVarP(&previewOutFile, "out", "o", "", "Write to this file instead of stdout")
	previewCmd.Flags().BoolVarP(&previewVerbose, "verbose", "v", false, "Print a summary of the preview to stderr")

	_ = previewCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, _ []string) error {
	resume, err := loadResume(previewInput, types.VariantDetailed)
	if err != nil {
		return err
	}
	doc := preview.Build(resume)

	if previewVerbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintDocument(&doc)
	}

	var out io.Writer = cmd.OutOrStdout()
	if previewOutFile != "" {
		f, err := os.Create(previewOutFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	return writePreview(out, doc, previewHTML)
}

func writePreview(out io.Writer, doc preview.Document, asHTML bool) error {
	if asHTML {
		html, err := preview.RenderHTML(doc)
		if err != nil {
			return err
		}
		_, err = io.WriteString(out, html)
		return err
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal preview JSON: %w", err)
	}
	_, err = fmt.Fprintf(out, "%s\n", data)
	return err
}
