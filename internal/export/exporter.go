package export

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jonathan/resume-builder/internal/preview"
	"github.com/jonathan/resume-builder/internal/types"
)

// Engine selects how PDFs are produced.
type Engine string

// PDF engines.
const (
	// EngineAuto draws classic resumes and rasterizes detailed ones.
	EngineAuto Engine = "auto"
	// EngineDrawn always uses the paginated drawing layout.
	EngineDrawn Engine = "drawn"
	// EngineRaster always prints the HTML preview in a browser.
	EngineRaster Engine = "raster"
)

// ParseEngine converts a configuration string into an Engine.
func ParseEngine(s string) (Engine, error) {
	switch Engine(s) {
	case "", EngineAuto:
		return EngineAuto, nil
	case EngineDrawn, EngineRaster:
		return Engine(s), nil
	default:
		return "", fmt.Errorf("unknown PDF engine: %q", s)
	}
}

// Artifact is a finished export ready for download.
type Artifact struct {
	FileName    string
	ContentType string
	Data        []byte
	Pages       int // PDF only
}

// Exporter builds artifacts from resume state. It holds no per-export state,
// so concurrent and repeated exports are independent.
type Exporter struct {
	engine Engine
	html   HTMLRenderer
}

// Option configures an Exporter
type Option func(*Exporter)

// WithEngine sets the PDF engine.
func WithEngine(engine Engine) Option {
	return func(e *Exporter) {
		e.engine = engine
	}
}

// WithHTMLRenderer sets the renderer used for raster PDFs.
func WithHTMLRenderer(r HTMLRenderer) Option {
	return func(e *Exporter) {
		e.html = r
	}
}

// New creates an Exporter. By default it uses EngineAuto and a ChromeRenderer.
func New(opts ...Option) *Exporter {
	e := &Exporter{
		engine: EngineAuto,
		html:   &ChromeRenderer{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Export builds the artifact for r in the given format. Any failure,
// including a panic inside a renderer, is logged and returned as *Error.
// r is taken by value and never modified.
func (e *Exporter) Export(ctx context.Context, r types.Resume, format Format) (art *Artifact, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			art = nil
			err = &Error{Kind: KindRender, Format: format, Cause: fmt.Errorf("panic: %v", rec)}
		}
		if err != nil {
			log.Printf("[export] %s export failed: %v", format, err)
		}
	}()

	doc := preview.Build(r.Normalize())
	name := FileName(r.Personal.FirstName, r.Personal.LastName, format)

	switch format {
	case FormatDOC:
		return &Artifact{
			FileName:    name,
			ContentType: ContentTypeDOC,
			Data:        []byte(BuildDOC(doc)),
		}, nil
	case FormatPDF:
		data, pages, err := e.pdf(ctx, doc)
		if err != nil {
			return nil, err
		}
		log.Printf("[export] pdf %s: %d page(s), %d bytes", name, pages, len(data))
		return &Artifact{
			FileName:    name,
			ContentType: ContentTypePDF,
			Data:        data,
			Pages:       pages,
		}, nil
	default:
		return nil, &Error{Kind: KindRender, Format: format, Cause: fmt.Errorf("unsupported format")}
	}
}

func (e *Exporter) pdf(ctx context.Context, doc preview.Document) ([]byte, int, error) {
	engine := e.engine
	if engine == EngineAuto {
		engine = EngineRaster
		if doc.Variant == types.VariantClassic {
			engine = EngineDrawn
		}
	}

	if engine == EngineDrawn {
		data, pages, err := DrawPDF(doc)
		if err != nil {
			return nil, 0, &Error{Kind: KindRender, Format: FormatPDF, Cause: err}
		}
		return data, pages, nil
	}

	if e.html == nil {
		return nil, 0, &Error{Kind: KindDependency, Format: FormatPDF, Cause: fmt.Errorf("no HTML renderer configured")}
	}
	html, err := preview.RenderHTML(doc)
	if err != nil {
		return nil, 0, &Error{Kind: KindRender, Format: FormatPDF, Cause: err}
	}
	if err := checkTarget(html); err != nil {
		return nil, 0, &Error{Kind: KindTarget, Format: FormatPDF, Cause: err}
	}

	data, err := e.html.RenderPDF(ctx, html)
	if err != nil {
		var exportErr *Error
		if errors.As(err, &exportErr) {
			return nil, 0, exportErr
		}
		return nil, 0, &Error{Kind: KindRender, Format: FormatPDF, Cause: err}
	}

	pages, err := CountPages(data)
	if err != nil {
		return nil, 0, &Error{Kind: KindRender, Format: FormatPDF, Cause: err}
	}
	return data, pages, nil
}
