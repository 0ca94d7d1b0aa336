// internal/workflows/listing/validation.go
package listing

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	commonerrors "jobboard-client/internal/common/errors"
	"jobboard-client/internal/models"
)

// Enum values accepted by the marketplace.
var (
	WorkTypes        = []string{"Onsite", "Remote", "Hybrid"}
	JobTypes         = []string{"Full-Time", "Part-Time", "Contract", "Freelance", "Internship"}
	ExperienceLevels = []string{"Internship", "Entry Level", "Associate", "Mid Senior Level", "Director"}
	SalaryRanges     = []string{
		"Below 25k",
		"25k - 50k",
		"50k - 75k",
		"75k - 100k",
		"100k - 150k",
		"150k - 200k",
		"200k+",
	}
)

func enumValues(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

var draftSchema = map[string]interface{}{
	"type":     "object",
	"required": []interface{}{"title", "description"},
	"properties": map[string]interface{}{
		"title":             map[string]interface{}{"type": "string", "minLength": 1},
		"description":       map[string]interface{}{"type": "string", "minLength": 1},
		"location":          map[string]interface{}{"type": "string"},
		"work_type":         map[string]interface{}{"enum": enumValues(WorkTypes)},
		"job_type":          map[string]interface{}{"enum": enumValues(JobTypes)},
		"experience_level":  map[string]interface{}{"enum": enumValues(ExperienceLevels)},
		"salary_range":      map[string]interface{}{"enum": enumValues(SalaryRanges)},
		"experience_months": map[string]interface{}{"type": "integer", "minimum": 0},
		"required_skills": map[string]interface{}{
			"type":  "array",
			"items": map[string]interface{}{"type": "string", "minLength": 1},
		},
	},
}

// NormalizeExperienceMonths coerces the free-text months field to a
// non-negative integer. Leading zeros are accepted ("007" becomes 7);
// an empty field is 0.
func NormalizeExperienceMonths(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, commonerrors.NewValidationError(fmt.Sprintf("experience months %q is not a number", raw))
	}
	if n < 0 {
		return 0, commonerrors.NewValidationError("experience months cannot be negative")
	}
	return n, nil
}

// ValidateDraft checks the form against the listing schema and returns
// the normalized experience months on success.
func ValidateDraft(form models.ListingDraft) (int, error) {
	months, err := NormalizeExperienceMonths(form.ExperienceMonths)
	if err != nil {
		return 0, err
	}

	document := map[string]interface{}{
		"title":             form.Title,
		"description":       form.Description,
		"experience_months": months,
	}
	if form.Location != "" {
		document["location"] = form.Location
	}
	if form.WorkType != "" {
		document["work_type"] = form.WorkType
	}
	if form.JobType != "" {
		document["job_type"] = form.JobType
	}
	if form.ExperienceLevel != "" {
		document["experience_level"] = form.ExperienceLevel
	}
	if form.SalaryRange != "" {
		document["salary_range"] = form.SalaryRange
	}
	if form.RequiredSkills != nil {
		document["required_skills"] = form.RequiredSkills
	}

	schemaLoader := gojsonschema.NewGoLoader(draftSchema)
	documentLoader := gojsonschema.NewGoLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return 0, commonerrors.NewValidationError(fmt.Sprintf("schema validation error: %v", err))
	}
	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return 0, commonerrors.NewValidationError(strings.Join(errs, "; "))
	}
	return months, nil
}
