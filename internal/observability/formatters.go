// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/preview"
	"github.com/jonathan/resume-builder/internal/schemas"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-3]) + "..."
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintDocument outputs a human-readable summary of a resume's display tree.
func (p *Printer) PrintDocument(doc *preview.Document) {
	if doc == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:     %s\n", doc.Name))
	sb.WriteString(fmt.Sprintf("Variant:  %s\n", doc.Variant))
	if contact := doc.ContactLine(" | "); contact != "" {
		sb.WriteString(fmt.Sprintf("Contact:  %s\n", contact))
	}
	if len(doc.Links) > 0 {
		sb.WriteString(fmt.Sprintf("Links:    %d\n", len(doc.Links)))
	}

	if len(doc.Sections) == 0 {
		sb.WriteString("\n(no sections to show)\n")
	}
	for _, section := range doc.Sections {
		sb.WriteString("\n")
		switch section.Kind {
		case preview.SectionSkills:
			sb.WriteString(fmt.Sprintf("%s\n", section.Title))
			for _, line := range section.Skills {
				sb.WriteString(fmt.Sprintf("  %s: %s\n", line.Label, line.Value))
			}
			if len(section.Tags) > 0 {
				sb.WriteString(fmt.Sprintf("  %d tags: %s\n", len(section.Tags), strings.Join(section.Tags, ", ")))
			}
		default:
			sb.WriteString(fmt.Sprintf("%s (%d)\n", section.Title, len(section.Entries)))
			count := min(len(section.Entries), maxItemsToShow)
			for i := 0; i < count; i++ {
				entry := section.Entries[i]
				sb.WriteString(fmt.Sprintf("  • %s", entry.Title))
				if entry.Dates != "" {
					sb.WriteString(fmt.Sprintf(" (%s)", entry.Dates))
				}
				sb.WriteString("\n")
				if len(entry.Bullets) > 0 {
					sb.WriteString(fmt.Sprintf("    %d bullets\n", len(entry.Bullets)))
				}
			}
			if len(section.Entries) > maxItemsToShow {
				sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(section.Entries)-maxItemsToShow))
			}
		}
	}

	p.printBox("RESUME PREVIEW", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintArtifact outputs where an export was written and what it holds.
func (p *Printer) PrintArtifact(art *export.Artifact, path string) {
	if art == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("File:     %s\n", art.FileName))
	sb.WriteString(fmt.Sprintf("Type:     %s\n", art.ContentType))
	sb.WriteString(fmt.Sprintf("Size:     %d bytes\n", len(art.Data)))
	if art.Pages > 0 {
		sb.WriteString(fmt.Sprintf("Pages:    %d\n", art.Pages))
	}
	if path != "" {
		sb.WriteString(fmt.Sprintf("Written:  %s\n", path))
	}

	p.printBox("EXPORTED", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintValidationErrors outputs the schema errors of a resume document.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintValidationErrors(verr *schemas.ValidationError) {
	if verr == nil || len(verr.Errors) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ RESUME IS VALID")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d errors:\n\n", len(verr.Errors)))

	for i, e := range verr.Errors {
		sb.WriteString(fmt.Sprintf("⚠ %s\n", e.Field))
		sb.WriteString(fmt.Sprintf("  %s\n", truncate(e.Message, 45)))
		if i < len(verr.Errors)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("SCHEMA ERRORS", strings.TrimSuffix(sb.String(), "\n"))
}
