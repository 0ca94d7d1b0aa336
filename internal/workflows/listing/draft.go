// Package listing manages a company's listings: the draft form for a
// new posting, schema validation before submission, and the
// create/delete lifecycle against the backend.
package listing

import (
	"fmt"
	"strings"

	commonerrors "jobboard-client/internal/common/errors"
	"jobboard-client/internal/models"
)

// Draft form field names, in the user-facing vocabulary. Translation to
// the backend's names happens in the API layer.
const (
	FieldTitle            = "title"
	FieldDescription      = "description"
	FieldLocation         = "location"
	FieldWorkType         = "work_type"
	FieldJobType          = "job_type"
	FieldExperienceLevel  = "experience_level"
	FieldExperienceMonths = "experience_months"
	FieldSalaryRange      = "salary_range"
)

// Draft is the in-progress listing form.
type Draft struct {
	form models.ListingDraft
}

func NewDraft() *Draft {
	return &Draft{}
}

// SetField writes one scalar form field. Unknown names are rejected.
func (d *Draft) SetField(name, value string) error {
	switch name {
	case FieldTitle:
		d.form.Title = value
	case FieldDescription:
		d.form.Description = value
	case FieldLocation:
		d.form.Location = value
	case FieldWorkType:
		d.form.WorkType = value
	case FieldJobType:
		d.form.JobType = value
	case FieldExperienceLevel:
		d.form.ExperienceLevel = value
	case FieldExperienceMonths:
		d.form.ExperienceMonths = value
	case FieldSalaryRange:
		d.form.SalaryRange = value
	default:
		return commonerrors.NewValidationError(fmt.Sprintf("unknown draft field %q", name))
	}
	return nil
}

// AddSkill appends a required skill; blank or duplicate entries are a
// no-op.
func (d *Draft) AddSkill(skill string) {
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return
	}
	for _, existing := range d.form.RequiredSkills {
		if existing == skill {
			return
		}
	}
	d.form.RequiredSkills = append(d.form.RequiredSkills, skill)
}

// Form returns the current form contents.
func (d *Draft) Form() models.ListingDraft {
	form := d.form
	form.RequiredSkills = append([]string(nil), d.form.RequiredSkills...)
	return form
}

// Reset discards the form.
func (d *Draft) Reset() {
	d.form = models.ListingDraft{}
}
