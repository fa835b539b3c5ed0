// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"strings"
)

// Variant selects which of the two resume layouts a document uses.
type Variant string

const (
	// VariantDetailed has links, bullet points and categorized skills.
	VariantDetailed Variant = "detailed"
	// VariantClassic has a summary, free-text descriptions and a single skills line.
	VariantClassic Variant = "classic"
)

// ParseVariant converts a user-supplied string into a Variant.
// An empty string yields VariantDetailed.
func ParseVariant(s string) (Variant, error) {
	switch Variant(s) {
	case "":
		return VariantDetailed, nil
	case VariantDetailed, VariantClassic:
		return Variant(s), nil
	default:
		return "", fmt.Errorf("unknown variant: %q", s)
	}
}

// Resume is the full form state for one document.
// Experiences, Educations and Certifications always hold at least one entry.
type Resume struct {
	Variant        Variant         `json:"variant"`
	Personal       PersonalInfo    `json:"personal"`
	Experiences    []Experience    `json:"experiences"`
	Educations     []Education     `json:"educations"`
	Certifications []Certification `json:"certifications"`
	Skills         Skills          `json:"skills"`
}

// PersonalInfo is the singleton header block of a resume
type PersonalInfo struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	Summary   string `json:"summary,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty"`
	Website   string `json:"website,omitempty"`
}

// Experience is one job entry. Dates are "YYYY-MM" strings.
// When Current is set, EndDate is ignored for display and export.
type Experience struct {
	JobTitle    string   `json:"job_title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	Current     bool     `json:"current"`
	Description string   `json:"description,omitempty"`
	Bullets     []string `json:"bullets,omitempty"`
}

// Education is one school entry. GPA is free text.
type Education struct {
	School         string `json:"school"`
	Degree         string `json:"degree"`
	Location       string `json:"location"`
	GraduationDate string `json:"graduation_date"`
	GPA            string `json:"gpa,omitempty"`
}

// Certification is one certification or award entry
type Certification struct {
	Title        string `json:"title"`
	Organization string `json:"organization"`
	Year         string `json:"year"`
}

// Skills holds both skill shapes. The detailed variant uses the three
// categories; the classic variant uses Text, a comma-delimited list.
type Skills struct {
	Technical string `json:"technical,omitempty"`
	Languages string `json:"languages,omitempty"`
	Interests string `json:"interests,omitempty"`
	Text      string `json:"text,omitempty"`
}

// NewResume returns an empty resume of the given variant with one blank
// entry in every list, so a form always has somewhere to type.
func NewResume(variant Variant) Resume {
	return Resume{
		Variant:        variant,
		Experiences:    []Experience{NewExperience(variant)},
		Educations:     []Education{{}},
		Certifications: []Certification{{}},
	}
}

// NewExperience returns a default-initialized experience entry.
// Detailed entries start with one empty bullet.
func NewExperience(variant Variant) Experience {
	if variant == VariantClassic {
		return Experience{}
	}
	return Experience{Bullets: []string{""}}
}

// Normalize fills in missing defaults on a decoded resume: an unknown or
// empty variant becomes detailed and empty lists get their default entry.
func (r Resume) Normalize() Resume {
	if r.Variant != VariantClassic {
		r.Variant = VariantDetailed
	}
	if len(r.Experiences) == 0 {
		r.Experiences = []Experience{NewExperience(r.Variant)}
	}
	if len(r.Educations) == 0 {
		r.Educations = []Education{{}}
	}
	if len(r.Certifications) == 0 {
		r.Certifications = []Certification{{}}
	}
	return r
}

// FullName joins first and last name, trimmed of surrounding space.
func (p PersonalInfo) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// IsBlank reports whether both identifying fields (job title and company) are blank.
func (e Experience) IsBlank() bool {
	return e.JobTitle == "" && e.Company == ""
}

// IsBlank reports whether both identifying fields (school and degree) are blank.
func (e Education) IsBlank() bool {
	return e.School == "" && e.Degree == ""
}

// IsBlank reports whether both identifying fields (title and organization) are blank.
func (c Certification) IsBlank() bool {
	return c.Title == "" && c.Organization == ""
}
