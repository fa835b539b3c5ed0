package export

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/resume-builder/internal/preview"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Format is an export output format
type Format string

// Supported formats.
const (
	FormatPDF Format = "pdf"
	FormatDOC Format = "doc"
)

// Media types of the produced artifacts.
const (
	ContentTypePDF = "application/pdf"
	ContentTypeDOC = "application/msword"
)

// ParseFormat converts a user-supplied string into a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatPDF:
		return FormatPDF, nil
	case FormatDOC:
		return FormatDOC, nil
	default:
		return "", fmt.Errorf("unsupported export format: %q", s)
	}
}

// ContentType returns the media type of f.
func (f Format) ContentType() string {
	if f == FormatDOC {
		return ContentTypeDOC
	}
	return ContentTypePDF
}

var whitespaceRun = regexp.MustCompile(`\s+`)

var lower = cases.Lower(language.Und)

// FileName derives the download name "{first}_{last}_resume.{ext}":
// whitespace runs become underscores and the result is lower-cased.
// A blank name falls back to the "Your Name" placeholder.
func FileName(first, last string, format Format) string {
	name := strings.TrimSpace(first + " " + last)
	if name == "" {
		name = preview.PlaceholderName
	}
	name = whitespaceRun.ReplaceAllString(name, "_")
	return lower.String(name) + "_resume." + string(format)
}
