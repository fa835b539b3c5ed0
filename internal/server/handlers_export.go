package server

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/types"
)

// ExportErrorResponse is returned when an export fails. Error carries the
// alert text shown to the user.
type ExportErrorResponse struct {
	Error  string      `json:"error"`
	Kind   export.Kind `json:"kind"`
	Format string      `json:"format"`
}

// handleDraftExport exports the current state of a draft
func (s *Server) handleDraftExport(w http.ResponseWriter, r *http.Request) {
	format, err := parseExportFormat(r.PathValue("format"))
	if err != nil {
		s.errorFrom(w, err)
		return
	}

	// The resume is a value copy, so the export runs without holding the draft.
	draft, err := s.sessions.Get(r.PathValue("id"))
	if err != nil {
		s.errorFrom(w, err)
		return
	}

	s.writeExport(w, r, draft.Resume, format)
}

// handleExport exports a posted resume without storing it
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	format, err := parseExportFormat(r.PathValue("format"))
	if err != nil {
		s.errorFrom(w, err)
		return
	}

	resume, err := s.decodeResume(w, r)
	if err != nil {
		s.errorFrom(w, err)
		return
	}

	s.writeExport(w, r, resume, format)
}

func (s *Server) writeExport(w http.ResponseWriter, r *http.Request, resume types.Resume, format export.Format) {
	ctx, cancel := context.WithTimeout(r.Context(), s.exportTimeout)
	defer cancel()

	art, err := s.exporter.Export(ctx, resume, format)
	if err != nil {
		s.jsonResponse(w, HTTPStatus(err), ExportErrorResponse{
			Error:  export.UserMessage(format),
			Kind:   export.KindOf(err),
			Format: string(format),
		})
		return
	}

	w.Header().Set("Content-Type", art.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", art.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(art.Data)))
	if art.Pages > 0 {
		w.Header().Set("X-Page-Count", strconv.Itoa(art.Pages))
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(art.Data)
}

func parseExportFormat(raw string) (export.Format, error) {
	req := types.ExportRequest{Format: raw}
	if err := req.Validate(); err != nil {
		return "", &ErrValidation{Field: "format", Message: fmt.Sprintf("unsupported export format %q", raw)}
	}
	return export.ParseFormat(raw)
}
