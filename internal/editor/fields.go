package editor

// PersonalField names one mutable field of the personal info block.
type PersonalField int

// Personal info fields.
const (
	PersonalFirstName PersonalField = iota
	PersonalLastName
	PersonalEmail
	PersonalPhone
	PersonalLocation
	PersonalSummary
	PersonalLinkedIn
	PersonalGitHub
	PersonalWebsite
)

var personalFieldNames = map[string]PersonalField{
	"first_name": PersonalFirstName,
	"last_name":  PersonalLastName,
	"email":      PersonalEmail,
	"phone":      PersonalPhone,
	"location":   PersonalLocation,
	"summary":    PersonalSummary,
	"linkedin":   PersonalLinkedIn,
	"github":     PersonalGitHub,
	"website":    PersonalWebsite,
}

// ParsePersonalField maps a JSON field name to a PersonalField.
func ParsePersonalField(name string) (PersonalField, error) {
	if f, ok := personalFieldNames[name]; ok {
		return f, nil
	}
	return 0, &FieldError{Entity: "personal", Field: name}
}

// ExperienceField names one mutable text field of an experience entry.
// The current flag and bullets have their own operations.
type ExperienceField int

// Experience fields.
const (
	ExperienceJobTitle ExperienceField = iota
	ExperienceCompany
	ExperienceLocation
	ExperienceStartDate
	ExperienceEndDate
	ExperienceDescription
)

var experienceFieldNames = map[string]ExperienceField{
	"job_title":   ExperienceJobTitle,
	"company":     ExperienceCompany,
	"location":    ExperienceLocation,
	"start_date":  ExperienceStartDate,
	"end_date":    ExperienceEndDate,
	"description": ExperienceDescription,
}

// ParseExperienceField maps a JSON field name to an ExperienceField.
func ParseExperienceField(name string) (ExperienceField, error) {
	if f, ok := experienceFieldNames[name]; ok {
		return f, nil
	}
	return 0, &FieldError{Entity: "experience", Field: name}
}

// EducationField names one mutable field of an education entry.
type EducationField int

// Education fields.
const (
	EducationSchool EducationField = iota
	EducationDegree
	EducationLocation
	EducationGraduationDate
	EducationGPA
)

var educationFieldNames = map[string]EducationField{
	"school":          EducationSchool,
	"degree":          EducationDegree,
	"location":        EducationLocation,
	"graduation_date": EducationGraduationDate,
	"gpa":             EducationGPA,
}

// ParseEducationField maps a JSON field name to an EducationField.
func ParseEducationField(name string) (EducationField, error) {
	if f, ok := educationFieldNames[name]; ok {
		return f, nil
	}
	return 0, &FieldError{Entity: "education", Field: name}
}

// CertificationField names one mutable field of a certification entry.
type CertificationField int

// Certification fields.
const (
	CertificationTitle CertificationField = iota
	CertificationOrganization
	CertificationYear
)

var certificationFieldNames = map[string]CertificationField{
	"title":        CertificationTitle,
	"organization": CertificationOrganization,
	"year":         CertificationYear,
}

// ParseCertificationField maps a JSON field name to a CertificationField.
func ParseCertificationField(name string) (CertificationField, error) {
	if f, ok := certificationFieldNames[name]; ok {
		return f, nil
	}
	return 0, &FieldError{Entity: "certification", Field: name}
}

// SkillsField names one mutable field of the skills block.
type SkillsField int

// Skills fields.
const (
	SkillsTechnical SkillsField = iota
	SkillsLanguages
	SkillsInterests
	SkillsText
)

var skillsFieldNames = map[string]SkillsField{
	"technical": SkillsTechnical,
	"languages": SkillsLanguages,
	"interests": SkillsInterests,
	"text":      SkillsText,
}

// ParseSkillsField maps a JSON field name to a SkillsField.
func ParseSkillsField(name string) (SkillsField, error) {
	if f, ok := skillsFieldNames[name]; ok {
		return f, nil
	}
	return 0, &FieldError{Entity: "skills", Field: name}
}
