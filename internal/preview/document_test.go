package preview

import (
	"testing"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDetailed() types.Resume {
	r := types.NewResume(types.VariantDetailed)
	r.Personal = types.PersonalInfo{
		FirstName: "Ana Maria",
		LastName:  "Cruz",
		Email:     "ana@example.com",
		Phone:     "555-0100",
		Location:  "Lisbon",
		GitHub:    "github.com/ana",
	}
	r.Experiences = []types.Experience{
		{JobTitle: "Engineer", Company: "Acme", StartDate: "2020-03", EndDate: "2022-01", Current: true, Bullets: []string{"Built APIs", "  ", "Led team"}},
		{Bullets: []string{"orphan bullet"}},
	}
	r.Educations = []types.Education{{School: "MIT", GraduationDate: "2019-06", GPA: "3.9"}}
	r.Skills = types.Skills{Technical: "Go, SQL", Interests: "Chess"}
	return r
}

func TestBuild_EmptyResume(t *testing.T) {
	doc := Build(types.NewResume(types.VariantDetailed))

	assert.Equal(t, PlaceholderName, doc.Name)
	assert.Empty(t, doc.Sections)
	assert.Empty(t, doc.Links)
}

func TestBuild_FiltersBlankEntries(t *testing.T) {
	doc := Build(sampleDetailed())

	exp, ok := doc.Section(SectionExperience)
	require.True(t, ok)
	require.Len(t, exp.Entries, 1)
	assert.Equal(t, "Engineer", exp.Entries[0].Title)
	assert.Equal(t, []string{"Built APIs", "Led team"}, exp.Entries[0].Bullets)

	_, ok = doc.Section(SectionCertifications)
	assert.False(t, ok, "certification section with only blank entries is omitted")
}

func TestBuild_CurrentShowsPresent(t *testing.T) {
	doc := Build(sampleDetailed())

	exp, _ := doc.Section(SectionExperience)
	assert.Equal(t, "Mar 2020 - Present", exp.Entries[0].Dates)
}

func TestBuild_PlaceholdersOnKeptEntries(t *testing.T) {
	doc := Build(sampleDetailed())

	edu, ok := doc.Section(SectionEducation)
	require.True(t, ok)
	assert.Equal(t, PlaceholderDegree, edu.Entries[0].Title)
	assert.Equal(t, "MIT", edu.Entries[0].Subtitle)
	assert.Equal(t, "Jun 2019", edu.Entries[0].Dates)
	assert.Equal(t, "3.9", edu.Entries[0].GPA)
}

func TestBuild_HeaderAndOrder(t *testing.T) {
	doc := Build(sampleDetailed())

	assert.Equal(t, "Ana Maria Cruz", doc.Name)
	assert.Equal(t, "ana@example.com | 555-0100 | Lisbon", doc.ContactLine(" | "))
	assert.Equal(t, []string{"GitHub: github.com/ana"}, doc.Links)

	var kinds []SectionKind
	for _, s := range doc.Sections {
		kinds = append(kinds, s.Kind)
	}
	assert.Equal(t, []SectionKind{SectionEducation, SectionExperience, SectionSkills}, kinds)

	skills, _ := doc.Section(SectionSkills)
	assert.Equal(t, []SkillLine{{"Technical", "Go, SQL"}, {"Interests", "Chess"}}, skills.Skills)
}

func TestBuild_Classic(t *testing.T) {
	r := types.NewResume(types.VariantClassic)
	r.Personal.FirstName = "Lee"
	r.Personal.Summary = "  Backend engineer.  "
	r.Experiences[0] = types.Experience{Company: "Initech", Description: "Wrote reports.\nFixed printers.", Bullets: []string{"ignored"}}
	r.Skills.Text = "Go, , Kubernetes ,SQL"

	doc := Build(r)

	assert.Equal(t, "Backend engineer.", doc.Summary)
	exp, ok := doc.Section(SectionExperience)
	require.True(t, ok)
	assert.Equal(t, PlaceholderJobTitle, exp.Entries[0].Title)
	assert.Equal(t, "Wrote reports.\nFixed printers.", exp.Entries[0].Description)
	assert.Empty(t, exp.Entries[0].Bullets)

	skills, ok := doc.Section(SectionSkills)
	require.True(t, ok)
	assert.Equal(t, []string{"Go", "Kubernetes", "SQL"}, skills.Tags)
}

func TestSplitSkills(t *testing.T) {
	assert.Nil(t, SplitSkills(""))
	assert.Nil(t, SplitSkills(" , ,"))
	// A comma inside a skill name always splits it.
	assert.Equal(t, []string{"C", "C++", "Go (Golang", "1.22)"}, SplitSkills("C, C++, Go (Golang, 1.22)"))
}
