package editor

import (
	"fmt"

	"github.com/jonathan/resume-builder/internal/types"
)

// Every operation takes a resume by value and returns a new one. Lists that
// change are copied; entries that do not change keep their contents, so a
// caller holding the previous resume never sees it mutated.

// SetPersonal sets one field of the personal info block.
func SetPersonal(r types.Resume, field PersonalField, value string) (types.Resume, error) {
	p := r.Personal
	switch field {
	case PersonalFirstName:
		p.FirstName = value
	case PersonalLastName:
		p.LastName = value
	case PersonalEmail:
		p.Email = value
	case PersonalPhone:
		p.Phone = value
	case PersonalLocation:
		p.Location = value
	case PersonalSummary:
		p.Summary = value
	case PersonalLinkedIn:
		p.LinkedIn = value
	case PersonalGitHub:
		p.GitHub = value
	case PersonalWebsite:
		p.Website = value
	default:
		return r, &FieldError{Entity: "personal", Field: fmt.Sprint(int(field))}
	}
	r.Personal = p
	return r, nil
}

// SetSkills sets one field of the skills block.
func SetSkills(r types.Resume, field SkillsField, value string) (types.Resume, error) {
	s := r.Skills
	switch field {
	case SkillsTechnical:
		s.Technical = value
	case SkillsLanguages:
		s.Languages = value
	case SkillsInterests:
		s.Interests = value
	case SkillsText:
		s.Text = value
	default:
		return r, &FieldError{Entity: "skills", Field: fmt.Sprint(int(field))}
	}
	r.Skills = s
	return r, nil
}

// AddExperience appends a default-initialized experience entry.
func AddExperience(r types.Resume) types.Resume {
	r.Experiences = appendCopy(r.Experiences, types.NewExperience(r.Variant))
	return r
}

// RemoveExperience deletes the experience at index i, shifting later entries down.
func RemoveExperience(r types.Resume, i int) (types.Resume, error) {
	list, err := removeAt(r.Experiences, i, "experience")
	if err != nil {
		return r, err
	}
	r.Experiences = list
	return r, nil
}

// UpdateExperience sets one text field of the experience at index i.
func UpdateExperience(r types.Resume, i int, field ExperienceField, value string) (types.Resume, error) {
	list, err := updateAt(r.Experiences, i, "experience", func(e *types.Experience) error {
		switch field {
		case ExperienceJobTitle:
			e.JobTitle = value
		case ExperienceCompany:
			e.Company = value
		case ExperienceLocation:
			e.Location = value
		case ExperienceStartDate:
			e.StartDate = value
		case ExperienceEndDate:
			e.EndDate = value
		case ExperienceDescription:
			e.Description = value
		default:
			return &FieldError{Entity: "experience", Field: fmt.Sprint(int(field))}
		}
		return nil
	})
	if err != nil {
		return r, err
	}
	r.Experiences = list
	return r, nil
}

// SetExperienceCurrent sets the "currently employed" flag of the experience at index i.
// EndDate is kept as typed so unchecking the flag restores it.
func SetExperienceCurrent(r types.Resume, i int, current bool) (types.Resume, error) {
	list, err := updateAt(r.Experiences, i, "experience", func(e *types.Experience) error {
		e.Current = current
		return nil
	})
	if err != nil {
		return r, err
	}
	r.Experiences = list
	return r, nil
}

// AddBullet appends an empty bullet to the experience at index i.
func AddBullet(r types.Resume, i int) (types.Resume, error) {
	list, err := updateAt(r.Experiences, i, "experience", func(e *types.Experience) error {
		e.Bullets = appendCopy(e.Bullets, "")
		return nil
	})
	if err != nil {
		return r, err
	}
	r.Experiences = list
	return r, nil
}

// UpdateBullet replaces bullet j of the experience at index i.
func UpdateBullet(r types.Resume, i, j int, value string) (types.Resume, error) {
	list, err := updateAt(r.Experiences, i, "experience", func(e *types.Experience) error {
		bullets, err := updateAt(e.Bullets, j, "bullet", func(b *string) error {
			*b = value
			return nil
		})
		if err != nil {
			return err
		}
		e.Bullets = bullets
		return nil
	})
	if err != nil {
		return r, err
	}
	r.Experiences = list
	return r, nil
}

// RemoveBullet deletes bullet j of the experience at index i.
// Unlike entries, bullets may be removed down to zero.
func RemoveBullet(r types.Resume, i, j int) (types.Resume, error) {
	list, err := updateAt(r.Experiences, i, "experience", func(e *types.Experience) error {
		if j < 0 || j >= len(e.Bullets) {
			return &IndexError{List: "bullet", Index: j, Len: len(e.Bullets)}
		}
		bullets := make([]string, 0, len(e.Bullets)-1)
		bullets = append(bullets, e.Bullets[:j]...)
		e.Bullets = append(bullets, e.Bullets[j+1:]...)
		return nil
	})
	if err != nil {
		return r, err
	}
	r.Experiences = list
	return r, nil
}

// AddEducation appends an empty education entry.
func AddEducation(r types.Resume) types.Resume {
	r.Educations = appendCopy(r.Educations, types.Education{})
	return r
}

// RemoveEducation deletes the education at index i, shifting later entries down.
func RemoveEducation(r types.Resume, i int) (types.Resume, error) {
	list, err := removeAt(r.Educations, i, "education")
	if err != nil {
		return r, err
	}
	r.Educations = list
	return r, nil
}

// UpdateEducation sets one field of the education at index i.
func UpdateEducation(r types.Resume, i int, field EducationField, value string) (types.Resume, error) {
	list, err := updateAt(r.Educations, i, "education", func(e *types.Education) error {
		switch field {
		case EducationSchool:
			e.School = value
		case EducationDegree:
			e.Degree = value
		case EducationLocation:
			e.Location = value
		case EducationGraduationDate:
			e.GraduationDate = value
		case EducationGPA:
			e.GPA = value
		default:
			return &FieldError{Entity: "education", Field: fmt.Sprint(int(field))}
		}
		return nil
	})
	if err != nil {
		return r, err
	}
	r.Educations = list
	return r, nil
}

// AddCertification appends an empty certification entry.
func AddCertification(r types.Resume) types.Resume {
	r.Certifications = appendCopy(r.Certifications, types.Certification{})
	return r
}

// RemoveCertification deletes the certification at index i, shifting later entries down.
func RemoveCertification(r types.Resume, i int) (types.Resume, error) {
	list, err := removeAt(r.Certifications, i, "certification")
	if err != nil {
		return r, err
	}
	r.Certifications = list
	return r, nil
}

// UpdateCertification sets one field of the certification at index i.
func UpdateCertification(r types.Resume, i int, field CertificationField, value string) (types.Resume, error) {
	list, err := updateAt(r.Certifications, i, "certification", func(c *types.Certification) error {
		switch field {
		case CertificationTitle:
			c.Title = value
		case CertificationOrganization:
			c.Organization = value
		case CertificationYear:
			c.Year = value
		default:
			return &FieldError{Entity: "certification", Field: fmt.Sprint(int(field))}
		}
		return nil
	})
	if err != nil {
		return r, err
	}
	r.Certifications = list
	return r, nil
}

// appendCopy appends v to a fresh copy of list.
func appendCopy[T any](list []T, v T) []T {
	out := make([]T, len(list), len(list)+1)
	copy(out, list)
	return append(out, v)
}

// removeAt returns a copy of list without index i. A list of one is never shrunk.
func removeAt[T any](list []T, i int, name string) ([]T, error) {
	if i < 0 || i >= len(list) {
		return list, &IndexError{List: name, Index: i, Len: len(list)}
	}
	if len(list) <= 1 {
		return list, ErrLastEntry
	}
	out := make([]T, 0, len(list)-1)
	out = append(out, list[:i]...)
	return append(out, list[i+1:]...), nil
}

// updateAt returns a copy of list with fn applied to a copy of entry i.
func updateAt[T any](list []T, i int, name string, fn func(*T) error) ([]T, error) {
	if i < 0 || i >= len(list) {
		return list, &IndexError{List: name, Index: i, Len: len(list)}
	}
	entry := list[i]
	if err := fn(&entry); err != nil {
		return list, err
	}
	out := make([]T, len(list))
	copy(out, list)
	out[i] = entry
	return out, nil
}
