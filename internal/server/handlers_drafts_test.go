package server

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/jonathan/resume-builder/internal/editor"
	"github.com/jonathan/resume-builder/internal/preview"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResume() types.Resume {
	return types.Resume{
		Variant: types.VariantDetailed,
		Personal: types.PersonalInfo{
			FirstName: "Ana",
			LastName:  "Cruz",
			Email:     "ana@example.com",
		},
		Experiences: []types.Experience{{
			JobTitle:  "Engineer",
			Company:   "Acme",
			StartDate: "2020-01",
			Current:   true,
			Bullets:   []string{"Shipped the billing service"},
		}},
		Skills: types.Skills{Technical: "Go, SQL"},
	}
}

func createDraft(t *testing.T, s *Server, body any) string {
	t.Helper()
	w := doRequest(t, s, http.MethodPost, "/api/drafts", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodeDraft(t, w).ID
}

func TestCreateDraft_Empty(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s, http.MethodPost, "/api/drafts", nil)

	assert.Equal(t, http.StatusCreated, w.Code)
	d := decodeDraft(t, w)
	assert.NotEmpty(t, d.ID)
	assert.Equal(t, types.VariantDetailed, d.Resume.Variant)
	assert.Len(t, d.Resume.Experiences, 1)
	assert.Len(t, d.Resume.Educations, 1)
	assert.Len(t, d.Resume.Certifications, 1)
	assert.Equal(t, preview.PlaceholderName, d.Preview.Name)
}

func TestCreateDraft_Classic(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s, http.MethodPost, "/api/drafts", map[string]any{"variant": "classic"})

	require.Equal(t, http.StatusCreated, w.Code)
	d := decodeDraft(t, w)
	assert.Equal(t, types.VariantClassic, d.Resume.Variant)
	assert.Empty(t, d.Resume.Experiences[0].Bullets)
}

func TestCreateDraft_Seeded(t *testing.T) {
	s := newTestServer(t)
	resume := sampleResume()

	w := doRequest(t, s, http.MethodPost, "/api/drafts", types.CreateDraftRequest{Resume: &resume})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	d := decodeDraft(t, w)
	assert.Equal(t, "Ana", d.Resume.Personal.FirstName)
	assert.Equal(t, "Ana Cruz", d.Preview.Name)
	// Empty lists get their default entry.
	assert.Len(t, d.Resume.Educations, 1)
}

func TestCreateDraft_Invalid(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{name: "unknown variant", body: `{"variant":"fancy"}`},
		{name: "malformed", body: `{"variant":`},
		{name: "resume wrong type", body: `{"resume":{"personal":{"first_name":7}}}`},
		{name: "resume unknown field", body: `{"resume":{"hobbies":"chess"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, s, http.MethodPost, "/api/drafts", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		})
	}
	assert.Equal(t, 0, s.sessions.Len())
}

func TestGetDraft(t *testing.T) {
	s := newTestServer(t)
	id := createDraft(t, s, nil)

	w := doRequest(t, s, http.MethodGet, "/api/drafts/"+id, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, id, decodeDraft(t, w).ID)
}

func TestGetDraft_NotFound(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s, http.MethodGet, "/api/drafts/missing", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["error"])
}

func TestReplaceDraft(t *testing.T) {
	s := newTestServer(t)
	id := createDraft(t, s, map[string]any{"variant": "classic"})

	resume := sampleResume()
	resume.Variant = ""
	w := doRequest(t, s, http.MethodPut, "/api/drafts/"+id, resume)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	d := decodeDraft(t, w)
	assert.Equal(t, types.VariantClassic, d.Resume.Variant)
	assert.Equal(t, "Acme", d.Resume.Experiences[0].Company)
}

func TestReplaceDraft_SchemaViolation(t *testing.T) {
	s := newTestServer(t)
	id := createDraft(t, s, nil)

	w := doRequest(t, s, http.MethodPut, "/api/drafts/"+id, `{"experiences":"none"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteDraft(t *testing.T) {
	s := newTestServer(t)
	id := createDraft(t, s, nil)

	w := doRequest(t, s, http.MethodDelete, "/api/drafts/"+id, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(t, s, http.MethodDelete, "/api/drafts/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestApplyEdits_SingleEdit(t *testing.T) {
	s := newTestServer(t)
	id := createDraft(t, s, nil)

	w := doRequest(t, s, http.MethodPost, "/api/drafts/"+id+"/edits",
		editor.Edit{Op: editor.OpSetPersonal, Field: "first_name", Value: "Ana"})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	d := decodeDraft(t, w)
	assert.Equal(t, "Ana", d.Resume.Personal.FirstName)
	assert.Equal(t, "Ana", d.Preview.Name)
}

func TestApplyEdits_Array(t *testing.T) {
	s := newTestServer(t)
	id := createDraft(t, s, nil)

	w := doRequest(t, s, http.MethodPost, "/api/drafts/"+id+"/edits", []editor.Edit{
		{Op: editor.OpAddExperience},
		{Op: editor.OpUpdateExperience, Index: 1, Field: "company", Value: "Globex"},
		{Op: editor.OpAddBullet, Index: 1},
	})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	d := decodeDraft(t, w)
	require.Len(t, d.Resume.Experiences, 2)
	assert.Equal(t, "Globex", d.Resume.Experiences[1].Company)
	assert.Len(t, d.Resume.Experiences[1].Bullets, 2)
}

func TestApplyEdits_Envelope(t *testing.T) {
	s := newTestServer(t)
	id := createDraft(t, s, nil)

	w := doRequest(t, s, http.MethodPost, "/api/drafts/"+id+"/edits", EditsRequest{Edits: []editor.Edit{
		{Op: editor.OpSetSkills, Field: "technical", Value: "Go, Rust"},
	}})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Go, Rust", decodeDraft(t, w).Resume.Skills.Technical)
}

func TestApplyEdits_LastEntryConflict(t *testing.T) {
	s := newTestServer(t)
	id := createDraft(t, s, nil)

	w := doRequest(t, s, http.MethodPost, "/api/drafts/"+id+"/edits",
		editor.Edit{Op: editor.OpRemoveEducation, Index: 0})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestApplyEdits_BatchIsAtomic(t *testing.T) {
	s := newTestServer(t)
	id := createDraft(t, s, nil)

	w := doRequest(t, s, http.MethodPost, "/api/drafts/"+id+"/edits", []editor.Edit{
		{Op: editor.OpSetPersonal, Field: "first_name", Value: "Ana"},
		{Op: editor.OpSetPersonal, Field: "middle_name", Value: "M"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, s, http.MethodGet, "/api/drafts/"+id, nil)
	assert.Empty(t, decodeDraft(t, w).Resume.Personal.FirstName)
}

func TestApplyEdits_BadRequests(t *testing.T) {
	s := newTestServer(t)
	id := createDraft(t, s, nil)

	tests := []struct {
		name string
		body string
		code int
	}{
		{name: "empty body", body: "", code: http.StatusBadRequest},
		{name: "empty batch", body: `[]`, code: http.StatusBadRequest},
		{name: "missing op", body: `{"field":"email"}`, code: http.StatusBadRequest},
		{name: "unknown op", body: `{"op":"explode"}`, code: http.StatusBadRequest},
		{name: "index out of range", body: `{"op":"update_experience","index":4,"field":"company","value":"X"}`, code: http.StatusBadRequest},
		{name: "negative index", body: `{"op":"remove_bullet","index":-1}`, code: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, s, http.MethodPost, "/api/drafts/"+id+"/edits", tt.body)
			assert.Equal(t, tt.code, w.Code, w.Body.String())
		})
	}
}

func TestApplyEdits_UnknownDraft(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s, http.MethodPost, "/api/drafts/missing/edits",
		editor.Edit{Op: editor.OpAddExperience})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDraftPreview(t *testing.T) {
	s := newTestServer(t)
	resume := sampleResume()
	resume.Personal.LastName = "<Cruz>"
	id := createDraft(t, s, types.CreateDraftRequest{Resume: &resume})

	w := doRequest(t, s, http.MethodGet, "/api/drafts/"+id+"/preview", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "Ana &lt;Cruz&gt;")
	assert.NotContains(t, w.Body.String(), "<Cruz>")
}

func TestPreview_Stateless(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s, http.MethodPost, "/api/preview", sampleResume())

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var doc preview.Document
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "Ana Cruz", doc.Name)
	assert.NotEmpty(t, doc.Sections)
	assert.Equal(t, 0, s.sessions.Len())
}

func TestPreview_Invalid(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(t, s, http.MethodPost, "/api/preview", `not json`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDecodeEdits(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    int
		wantErr bool
	}{
		{name: "single", body: `{"op":"add_experience"}`, want: 1},
		{name: "array", body: `[{"op":"add_experience"},{"op":"add_education"}]`, want: 2},
		{name: "envelope", body: `{"edits":[{"op":"add_bullet"}]}`, want: 1},
		{name: "whitespace", body: "  \n", wantErr: true},
		{name: "malformed", body: `{"op":`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := decodeEdits([]byte(tt.body))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, req.Edits, tt.want)
		})
	}
}
