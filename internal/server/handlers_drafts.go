package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/resume-builder/internal/editor"
	"github.com/jonathan/resume-builder/internal/preview"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
)

// maxBodyBytes bounds request bodies; a resume is a few kilobytes.
const maxBodyBytes = 1 << 20

var validate = validator.New()

// EditsRequest is the body of POST /api/drafts/{id}/edits. A bare edit
// object is accepted as a batch of one.
type EditsRequest struct {
	Edits []editor.Edit `json:"edits" validate:"required,min=1,dive"`
}

// handleCreateDraft opens a new draft, optionally seeded with a resume
func (s *Server) handleCreateDraft(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		s.errorFrom(w, err)
		return
	}

	var req types.CreateDraftRequest
	if len(bytes.TrimSpace(body)) > 0 {
		var envelope struct {
			Resume json.RawMessage `json:"resume"`
		}
		if err := json.Unmarshal(body, &envelope); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
			return
		}
		if len(envelope.Resume) > 0 && string(envelope.Resume) != "null" {
			if err := schemas.ValidateResume(envelope.Resume); err != nil {
				s.errorFrom(w, err)
				return
			}
		}
		if err := json.Unmarshal(body, &req); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
			return
		}
	}

	if err := req.Validate(); err != nil {
		s.errorFrom(w, err)
		return
	}

	variant, err := types.ParseVariant(req.Variant)
	if err != nil {
		s.errorFrom(w, &ErrValidation{Field: "variant", Message: err.Error()})
		return
	}

	draft := s.sessions.Create(variant, req.Resume)
	s.jsonResponse(w, http.StatusCreated, draft)
}

// handleGetDraft returns a draft with its current preview
func (s *Server) handleGetDraft(w http.ResponseWriter, r *http.Request) {
	draft, err := s.sessions.Get(r.PathValue("id"))
	if err != nil {
		s.errorFrom(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, draft)
}

// handleReplaceDraft swaps the whole resume of a draft
func (s *Server) handleReplaceDraft(w http.ResponseWriter, r *http.Request) {
	resume, err := s.decodeResume(w, r)
	if err != nil {
		s.errorFrom(w, err)
		return
	}

	draft, err := s.sessions.Replace(r.PathValue("id"), resume)
	if err != nil {
		s.errorFrom(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, draft)
}

// handleDeleteDraft discards a draft
func (s *Server) handleDeleteDraft(w http.ResponseWriter, r *http.Request) {
	if err := s.sessions.Delete(r.PathValue("id")); err != nil {
		s.errorFrom(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleApplyEdits applies a batch of form edits to a draft
func (s *Server) handleApplyEdits(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		s.errorFrom(w, err)
		return
	}

	req, err := decodeEdits(body)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := validate.Struct(req); err != nil {
		s.errorFrom(w, err)
		return
	}

	draft, err := s.sessions.Apply(r.PathValue("id"), req.Edits...)
	if err != nil {
		s.errorFrom(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, draft)
}

// handleDraftPreview renders the draft's preview as an HTML page
func (s *Server) handleDraftPreview(w http.ResponseWriter, r *http.Request) {
	draft, err := s.sessions.Get(r.PathValue("id"))
	if err != nil {
		s.errorFrom(w, err)
		return
	}

	html, err := preview.RenderHTML(draft.Preview)
	if err != nil {
		s.errorFrom(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, html)
}

// handlePreview builds the display tree of a posted resume without storing it
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	resume, err := s.decodeResume(w, r)
	if err != nil {
		s.errorFrom(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, preview.Build(resume.Normalize()))
}

// decodeResume reads a resume document body, checking its shape against
// the resume schema before decoding.
func (s *Server) decodeResume(w http.ResponseWriter, r *http.Request) (types.Resume, error) {
	body, err := readBody(w, r)
	if err != nil {
		return types.Resume{}, err
	}
	if err := schemas.ValidateResume(body); err != nil {
		return types.Resume{}, err
	}

	var resume types.Resume
	if err := json.Unmarshal(body, &resume); err != nil {
		return types.Resume{}, &ErrValidation{Field: "body", Message: err.Error()}
	}
	return resume, nil
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, &ErrValidation{Field: "body", Message: fmt.Sprintf("unreadable request body: %v", err)}
	}
	return body, nil
}

func decodeEdits(body []byte) (EditsRequest, error) {
	var req EditsRequest
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return req, fmt.Errorf("empty body")
	}

	switch trimmed[0] {
	case '[':
		err := json.Unmarshal(trimmed, &req.Edits)
		return req, err
	default:
		var probe map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &probe); err != nil {
			return req, err
		}
		if _, ok := probe["edits"]; ok {
			err := json.Unmarshal(trimmed, &req)
			return req, err
		}
		var single editor.Edit
		if err := json.Unmarshal(trimmed, &single); err != nil {
			return req, err
		}
		req.Edits = []editor.Edit{single}
		return req, nil
	}
}
