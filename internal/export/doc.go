package export

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/preview"
)

const (
	fieldSep     = " | "
	bulletMarker = "• "
)

// BuildDOC renders doc as the flat text body of a legacy word-processor file.
// Sections appear in fixed order and only when they have content.
func BuildDOC(doc preview.Document) string {
	var sb strings.Builder

	sb.WriteString(doc.Name + "\n")
	if contact := doc.ContactLine(fieldSep); contact != "" {
		sb.WriteString(contact + "\n")
	}
	if len(doc.Links) > 0 {
		sb.WriteString(strings.Join(doc.Links, fieldSep) + "\n\n")
	}
	if doc.Summary != "" {
		sb.WriteString(doc.Summary + "\n\n")
	}

	for _, section := range doc.Sections {
		sb.WriteString(section.Title + "\n")
		switch section.Kind {
		case preview.SectionEducation:
			for _, e := range section.Entries {
				sb.WriteString(strings.Join([]string{e.Title, e.Subtitle, e.Location, e.Dates}, fieldSep))
				if e.GPA != "" {
					sb.WriteString(fieldSep + "GPA: " + e.GPA)
				}
				sb.WriteString("\n")
			}
			sb.WriteString("\n")
		case preview.SectionExperience:
			for _, e := range section.Entries {
				sb.WriteString(strings.Join([]string{e.Title, e.Subtitle, e.Location, e.Dates}, fieldSep) + "\n")
				for _, line := range entryLines(e) {
					sb.WriteString(bulletMarker + line + "\n")
				}
				sb.WriteString("\n")
			}
		case preview.SectionCertifications:
			for _, e := range section.Entries {
				sb.WriteString(strings.Join([]string{e.Title, e.Subtitle, e.Dates}, fieldSep) + "\n")
			}
			sb.WriteString("\n")
		case preview.SectionSkills:
			for _, s := range section.Skills {
				sb.WriteString(s.Label + ": " + s.Value + "\n")
			}
			if len(section.Tags) > 0 {
				sb.WriteString(strings.Join(section.Tags, ", ") + "\n")
			}
		}
	}

	return sb.String()
}

// entryLines returns the bullet lines of an experience entry: its bullets,
// or the non-blank lines of its description.
func entryLines(e preview.Entry) []string {
	if len(e.Bullets) > 0 {
		return e.Bullets
	}
	var lines []string
	for _, line := range strings.Split(e.Description, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
