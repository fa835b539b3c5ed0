package export

import (
	"context"
	"errors"
	"testing"

	"github.com/jonathan/resume-builder/internal/preview"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRenderer records the HTML it is given and returns canned output.
type fakeRenderer struct {
	calls int
	html  string
	data  []byte
	err   error
	panic bool
}

func (f *fakeRenderer) RenderPDF(_ context.Context, html string) ([]byte, error) {
	f.calls++
	f.html = html
	if f.panic {
		panic("renderer crashed")
	}
	return f.data, f.err
}

func detailedResume() types.Resume {
	r := types.NewResume(types.VariantDetailed)
	r.Personal = types.PersonalInfo{FirstName: "Ana Maria", LastName: "Cruz"}
	r.Experiences[0] = types.Experience{JobTitle: "Engineer", Company: "Acme", Bullets: []string{"Built APIs"}}
	return r
}

func TestExport_DOC(t *testing.T) {
	renderer := &fakeRenderer{}
	e := New(WithHTMLRenderer(renderer))

	art, err := e.Export(context.Background(), detailedResume(), FormatDOC)
	require.NoError(t, err)

	assert.Equal(t, "ana_maria_cruz_resume.doc", art.FileName)
	assert.Equal(t, "application/msword", art.ContentType)
	assert.Contains(t, string(art.Data), "Ana Maria Cruz\n")
	assert.Contains(t, string(art.Data), "• Built APIs")
	assert.Zero(t, renderer.calls)
}

func TestExport_AutoDrawsClassic(t *testing.T) {
	renderer := &fakeRenderer{}
	e := New(WithHTMLRenderer(renderer))

	art, err := e.Export(context.Background(), classicResume(), FormatPDF)
	require.NoError(t, err)

	assert.Equal(t, "ana_cruz_resume.pdf", art.FileName)
	assert.Equal(t, "application/pdf", art.ContentType)
	assert.Equal(t, 1, art.Pages)
	assert.Zero(t, renderer.calls, "classic resumes are drawn without a browser")
}

func TestExport_AutoRastersDetailed(t *testing.T) {
	canned, _, err := DrawPDF(preview.Build(classicResume()))
	require.NoError(t, err)
	renderer := &fakeRenderer{data: canned}
	e := New(WithHTMLRenderer(renderer))

	art, err := e.Export(context.Background(), detailedResume(), FormatPDF)
	require.NoError(t, err)

	assert.Equal(t, 1, renderer.calls)
	assert.Contains(t, renderer.html, `id="resume-preview"`)
	assert.Contains(t, renderer.html, "Built APIs")
	assert.Equal(t, canned, art.Data)
	assert.Equal(t, 1, art.Pages)
}

func TestExport_ForcedEngines(t *testing.T) {
	renderer := &fakeRenderer{}

	drawn := New(WithEngine(EngineDrawn), WithHTMLRenderer(renderer))
	_, err := drawn.Export(context.Background(), detailedResume(), FormatPDF)
	require.NoError(t, err)
	assert.Zero(t, renderer.calls)

	renderer.err = errors.New("boom")
	raster := New(WithEngine(EngineRaster), WithHTMLRenderer(renderer))
	_, err = raster.Export(context.Background(), classicResume(), FormatPDF)
	require.Error(t, err)
	assert.Equal(t, 1, renderer.calls)
}

func TestExport_RendererFailure(t *testing.T) {
	e := New(WithHTMLRenderer(&fakeRenderer{err: errors.New("tab crashed")}))

	art, err := e.Export(context.Background(), detailedResume(), FormatPDF)

	assert.Nil(t, art)
	var exportErr *Error
	require.ErrorAs(t, err, &exportErr)
	assert.Equal(t, KindRender, exportErr.Kind)
	assert.Equal(t, FormatPDF, exportErr.Format)
	assert.Contains(t, err.Error(), "tab crashed")
}

func TestExport_DependencyFailureKeepsKind(t *testing.T) {
	missing := &Error{Kind: KindDependency, Format: FormatPDF, Cause: errors.New("no browser")}
	e := New(WithHTMLRenderer(&fakeRenderer{err: missing}))

	_, err := e.Export(context.Background(), detailedResume(), FormatPDF)

	assert.Equal(t, KindDependency, KindOf(err))
}

func TestExport_NoRenderer(t *testing.T) {
	e := New(WithEngine(EngineRaster), WithHTMLRenderer(nil))

	_, err := e.Export(context.Background(), classicResume(), FormatPDF)

	assert.Equal(t, KindDependency, KindOf(err))
}

func TestExport_RecoversPanic(t *testing.T) {
	e := New(WithHTMLRenderer(&fakeRenderer{panic: true}))

	var (
		art *Artifact
		err error
	)
	assert.NotPanics(t, func() {
		art, err = e.Export(context.Background(), detailedResume(), FormatPDF)
	})

	assert.Nil(t, art)
	assert.Equal(t, KindRender, KindOf(err))
	assert.Contains(t, err.Error(), "renderer crashed")
}

func TestExport_InvalidPDFBytes(t *testing.T) {
	e := New(WithHTMLRenderer(&fakeRenderer{data: []byte("not a pdf")}))

	art, err := e.Export(context.Background(), detailedResume(), FormatPDF)

	assert.Nil(t, art)
	assert.Equal(t, KindRender, KindOf(err))
}

func TestExport_DoesNotModifyInput(t *testing.T) {
	r := types.Resume{Variant: "weird"}
	e := New()

	_, err := e.Export(context.Background(), r, FormatDOC)
	require.NoError(t, err)

	assert.Equal(t, types.Variant("weird"), r.Variant)
	assert.Nil(t, r.Experiences)
}

func TestExport_RepeatedExportsIndependent(t *testing.T) {
	e := New()
	r := classicResume()

	first, err := e.Export(context.Background(), r, FormatPDF)
	require.NoError(t, err)
	second, err := e.Export(context.Background(), r, FormatPDF)
	require.NoError(t, err)

	assert.Equal(t, first.Data, second.Data)
}

func TestCheckTarget(t *testing.T) {
	html, err := preview.RenderHTML(preview.Build(detailedResume()))
	require.NoError(t, err)
	assert.NoError(t, checkTarget(html))

	err = checkTarget("<html><body><div id=\"other\"></div></body></html>")
	assert.ErrorContains(t, err, "resume-preview")
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "Error generating PDF. Please try again.", UserMessage(FormatPDF))
	assert.Equal(t, "Error generating DOC file. Please try again.", UserMessage(FormatDOC))
	assert.Equal(t, KindRender, KindOf(errors.New("plain")))
}

func TestParseEngine(t *testing.T) {
	for in, want := range map[string]Engine{"": EngineAuto, "auto": EngineAuto, "drawn": EngineDrawn, "raster": EngineRaster} {
		got, err := ParseEngine(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseEngine("laser")
	assert.Error(t, err)
}
