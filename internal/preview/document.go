package preview

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// Section titles, in document order.
const (
	TitleEducation      = "EDUCATION"
	TitleExperience     = "EXPERIENCE"
	TitleCertifications = "CERTIFICATIONS & AWARDS"
	TitleSkills         = "SKILLS"
)

// Placeholders for header fields that are always shown.
const (
	PlaceholderName         = "Your Name"
	PlaceholderDegree       = "Degree"
	PlaceholderSchool       = "School"
	PlaceholderJobTitle     = "Job Title"
	PlaceholderCompany      = "Company"
	PlaceholderTitle        = "Title"
	PlaceholderOrganization = "Organization"
)

// SectionKind identifies which entity list a section came from
type SectionKind string

// Section kinds.
const (
	SectionEducation      SectionKind = "education"
	SectionExperience     SectionKind = "experience"
	SectionCertifications SectionKind = "certifications"
	SectionSkills         SectionKind = "skills"
)

// Document is the display tree of a resume. It contains only what is shown:
// blank entries and empty sections are already gone.
type Document struct {
	Variant  types.Variant `json:"variant"`
	Name     string        `json:"name"`
	Email    string        `json:"email,omitempty"`
	Phone    string        `json:"phone,omitempty"`
	Location string        `json:"location,omitempty"`
	Links    []string      `json:"links,omitempty"`
	Summary  string        `json:"summary,omitempty"`
	Sections []Section     `json:"sections"`
}

// Section is one titled block of the document
type Section struct {
	Kind    SectionKind `json:"kind"`
	Title   string      `json:"title"`
	Entries []Entry     `json:"entries,omitempty"`
	Skills  []SkillLine `json:"skills,omitempty"`
	Tags    []string    `json:"tags,omitempty"`
}

// Entry is one displayed list item. Title and Subtitle are the left column,
// Meta the right column (location, dates, GPA).
type Entry struct {
	Title       string   `json:"title"`
	Subtitle    string   `json:"subtitle"`
	Location    string   `json:"location,omitempty"`
	Dates       string   `json:"dates,omitempty"`
	GPA         string   `json:"gpa,omitempty"`
	Bullets     []string `json:"bullets,omitempty"`
	Description string   `json:"description,omitempty"`
}

// SkillLine is one labelled skill category
type SkillLine struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ContactLine returns the non-empty contact fields joined by sep.
func (d Document) ContactLine(sep string) string {
	return joinNonEmpty(sep, d.Email, d.Phone, d.Location)
}

// Section returns the section of the given kind, if shown.
func (d Document) Section(kind SectionKind) (Section, bool) {
	for _, s := range d.Sections {
		if s.Kind == kind {
			return s, true
		}
	}
	return Section{}, false
}

// Build projects r into its display document. It is pure and cheap enough
// to run after every edit.
func Build(r types.Resume) Document {
	p := r.Personal
	doc := Document{
		Variant:  r.Variant,
		Name:     orDefault(p.FullName(), PlaceholderName),
		Email:    p.Email,
		Phone:    p.Phone,
		Location: p.Location,
		Links:    links(p),
		Summary:  strings.TrimSpace(p.Summary),
		Sections: []Section{},
	}

	if s, ok := educationSection(r.Educations); ok {
		doc.Sections = append(doc.Sections, s)
	}
	if s, ok := experienceSection(r.Variant, r.Experiences); ok {
		doc.Sections = append(doc.Sections, s)
	}
	if s, ok := certificationSection(r.Certifications); ok {
		doc.Sections = append(doc.Sections, s)
	}
	if s, ok := skillsSection(r.Variant, r.Skills); ok {
		doc.Sections = append(doc.Sections, s)
	}

	return doc
}

func links(p types.PersonalInfo) []string {
	var out []string
	if p.LinkedIn != "" {
		out = append(out, "LinkedIn: "+p.LinkedIn)
	}
	if p.GitHub != "" {
		out = append(out, "GitHub: "+p.GitHub)
	}
	if p.Website != "" {
		out = append(out, "Website: "+p.Website)
	}
	return out
}

func educationSection(list []types.Education) (Section, bool) {
	var entries []Entry
	for _, e := range list {
		if e.IsBlank() {
			continue
		}
		entries = append(entries, Entry{
			Title:    orDefault(e.Degree, PlaceholderDegree),
			Subtitle: orDefault(e.School, PlaceholderSchool),
			Location: e.Location,
			Dates:    FormatMonth(e.GraduationDate),
			GPA:      e.GPA,
		})
	}
	return Section{Kind: SectionEducation, Title: TitleEducation, Entries: entries}, len(entries) > 0
}

func experienceSection(variant types.Variant, list []types.Experience) (Section, bool) {
	var entries []Entry
	for _, e := range list {
		if e.IsBlank() {
			continue
		}
		entry := Entry{
			Title:    orDefault(e.JobTitle, PlaceholderJobTitle),
			Subtitle: orDefault(e.Company, PlaceholderCompany),
			Location: e.Location,
			Dates:    FormatRange(e.StartDate, e.EndDate, e.Current),
		}
		if variant == types.VariantClassic {
			entry.Description = strings.TrimSpace(e.Description)
		} else {
			entry.Bullets = NonBlank(e.Bullets)
		}
		entries = append(entries, entry)
	}
	return Section{Kind: SectionExperience, Title: TitleExperience, Entries: entries}, len(entries) > 0
}

func certificationSection(list []types.Certification) (Section, bool) {
	var entries []Entry
	for _, c := range list {
		if c.IsBlank() {
			continue
		}
		entries = append(entries, Entry{
			Title:    orDefault(c.Title, PlaceholderTitle),
			Subtitle: orDefault(c.Organization, PlaceholderOrganization),
			Dates:    c.Year,
		})
	}
	return Section{Kind: SectionCertifications, Title: TitleCertifications, Entries: entries}, len(entries) > 0
}

func skillsSection(variant types.Variant, s types.Skills) (Section, bool) {
	section := Section{Kind: SectionSkills, Title: TitleSkills}
	if variant == types.VariantClassic {
		section.Tags = SplitSkills(s.Text)
		return section, len(section.Tags) > 0
	}

	for _, line := range []SkillLine{
		{Label: "Technical", Value: s.Technical},
		{Label: "Languages", Value: s.Languages},
		{Label: "Interests", Value: s.Interests},
	} {
		if line.Value != "" {
			section.Skills = append(section.Skills, line)
		}
	}
	return section, len(section.Skills) > 0
}

// SplitSkills splits a comma-delimited skills string into trimmed, non-empty
// tags. There is no escaping: a comma always separates two tags.
func SplitSkills(text string) []string {
	var tags []string
	for _, part := range strings.Split(text, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// NonBlank returns the lines that are not blank after trimming whitespace.
func NonBlank(lines []string) []string {
	var out []string
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			out = append(out, l)
		}
	}
	return out
}

func orDefault(v, placeholder string) string {
	if v == "" {
		return placeholder
	}
	return v
}

func joinNonEmpty(sep string, values ...string) string {
	var parts []string
	for _, v := range values {
		if v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, sep)
}
