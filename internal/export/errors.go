// Package export turns resume form state into downloadable PDF and DOC artifacts.
package export

import (
	"errors"
	"fmt"
)

// Kind classifies an export failure.
type Kind string

// Export failure kinds.
const (
	// KindDependency means an export dependency (e.g. the browser) could not be loaded.
	KindDependency Kind = "dependency"
	// KindTarget means the rendering target was missing from the preview.
	KindTarget Kind = "target"
	// KindRender means drawing or serialization failed.
	KindRender Kind = "render"
)

// Error is returned for every failed export. It never carries partial output.
type Error struct {
	Kind   Kind
	Format Format
	Cause  error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s export failed (%s): %v", e.Format, e.Kind, e.Cause)
	}
	return fmt.Sprintf("%s export failed (%s)", e.Format, e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// UserMessage returns the alert text shown to a user when an export of format fails.
func UserMessage(format Format) string {
	if format == FormatDOC {
		return "Error generating DOC file. Please try again."
	}
	return "Error generating PDF. Please try again."
}

// KindOf returns the Kind of an export error, or KindRender for any other error.
func KindOf(err error) Kind {
	var exportErr *Error
	if errors.As(err, &exportErr) {
		return exportErr.Kind
	}
	return KindRender
}
