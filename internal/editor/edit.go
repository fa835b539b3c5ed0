package editor

import (
	"fmt"

	"github.com/jonathan/resume-builder/internal/types"
)

// Op identifies one edit operation.
type Op string

// Edit operations accepted by Apply.
const (
	OpSetPersonal         Op = "set_personal"
	OpSetSkills           Op = "set_skills"
	OpAddExperience       Op = "add_experience"
	OpRemoveExperience    Op = "remove_experience"
	OpUpdateExperience    Op = "update_experience"
	OpSetCurrent          Op = "set_current"
	OpAddBullet           Op = "add_bullet"
	OpUpdateBullet        Op = "update_bullet"
	OpRemoveBullet        Op = "remove_bullet"
	OpAddEducation        Op = "add_education"
	OpRemoveEducation     Op = "remove_education"
	OpUpdateEducation     Op = "update_education"
	OpAddCertification    Op = "add_certification"
	OpRemoveCertification Op = "remove_certification"
	OpUpdateCertification Op = "update_certification"
)

// Edit is the wire form of one form event.
// Index targets a list entry, SubIndex a bullet within it.
type Edit struct {
	Op       Op     `json:"op" validate:"required"`
	Index    int    `json:"index,omitempty" validate:"min=0"`
	SubIndex int    `json:"sub_index,omitempty" validate:"min=0"`
	Field    string `json:"field,omitempty"`
	Value    string `json:"value,omitempty"`
	Flag     bool   `json:"flag,omitempty"`
}

// Apply parses the field name of e into its typed field and runs the
// matching operation against r.
func Apply(r types.Resume, e Edit) (types.Resume, error) {
	switch e.Op {
	case OpSetPersonal:
		f, err := ParsePersonalField(e.Field)
		if err != nil {
			return r, err
		}
		return SetPersonal(r, f, e.Value)
	case OpSetSkills:
		f, err := ParseSkillsField(e.Field)
		if err != nil {
			return r, err
		}
		return SetSkills(r, f, e.Value)
	case OpAddExperience:
		return AddExperience(r), nil
	case OpRemoveExperience:
		return RemoveExperience(r, e.Index)
	case OpUpdateExperience:
		f, err := ParseExperienceField(e.Field)
		if err != nil {
			return r, err
		}
		return UpdateExperience(r, e.Index, f, e.Value)
	case OpSetCurrent:
		return SetExperienceCurrent(r, e.Index, e.Flag)
	case OpAddBullet:
		return AddBullet(r, e.Index)
	case OpUpdateBullet:
		return UpdateBullet(r, e.Index, e.SubIndex, e.Value)
	case OpRemoveBullet:
		return RemoveBullet(r, e.Index, e.SubIndex)
	case OpAddEducation:
		return AddEducation(r), nil
	case OpRemoveEducation:
		return RemoveEducation(r, e.Index)
	case OpUpdateEducation:
		f, err := ParseEducationField(e.Field)
		if err != nil {
			return r, err
		}
		return UpdateEducation(r, e.Index, f, e.Value)
	case OpAddCertification:
		return AddCertification(r), nil
	case OpRemoveCertification:
		return RemoveCertification(r, e.Index)
	case OpUpdateCertification:
		f, err := ParseCertificationField(e.Field)
		if err != nil {
			return r, err
		}
		return UpdateCertification(r, e.Index, f, e.Value)
	default:
		return r, fmt.Errorf("%w: %q", ErrUnknownOp, e.Op)
	}
}
