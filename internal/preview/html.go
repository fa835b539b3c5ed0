package preview

import (
	_ "embed"
	"fmt"
	"html/template"
	"strings"
)

// TargetID is the id of the element holding the rendered resume.
const TargetID = "resume-preview"

//go:embed templates/preview.html.tmpl
var previewTemplate string

var htmlTemplate = template.Must(template.New("preview").Parse(previewTemplate))

// RenderError represents a failure turning a Document into HTML
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// RenderHTML renders doc as a standalone HTML page. All text is escaped.
func RenderHTML(doc Document) (string, error) {
	var sb strings.Builder
	if err := htmlTemplate.Execute(&sb, doc); err != nil {
		return "", &RenderError{
			Message: "failed to execute preview template",
			Cause:   err,
		}
	}
	return sb.String(), nil
}
