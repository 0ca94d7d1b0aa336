// internal/models/job.go
package models

// Job is the normalized listing record rendered to the user. Raw
// collaborator responses are remapped into this shape at the API
// boundary; once built it is immutable and replaced wholesale on
// re-fetch.
type Job struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	CompanyID        string   `json:"companyId"`
	Description      string   `json:"description"`
	Location         string   `json:"location"`
	WorkType         string   `json:"workType"`
	JobType          string   `json:"jobType"`
	ExperienceLevel  string   `json:"experienceLevel"`
	ExperienceMonths int      `json:"experienceMonths"`
	SalaryRange      string   `json:"salaryRange"`
	RequiredSkills   []string `json:"requiredSkills"`
	CreatedAt        string   `json:"createdAt"`
}

// FilterCriteria holds the current search filters. RequiredSkills is
// append-only through the filter state manager and never contains
// duplicates.
type FilterCriteria struct {
	WorkType        string   `json:"workType"`
	JobType         string   `json:"jobType"`
	ExperienceLevel string   `json:"experienceLevel"`
	SalaryRange     string   `json:"salaryRange"`
	RequiredSkills  []string `json:"requiredSkills"`
}

// IsEmpty reports whether no filter is active.
func (f FilterCriteria) IsEmpty() bool {
	return f.WorkType == "" && f.JobType == "" && f.ExperienceLevel == "" &&
		f.SalaryRange == "" && len(f.RequiredSkills) == 0
}

// ListingDraft is the company-side form for a new listing, in the
// user-facing field vocabulary. Translation to the backend's field
// names happens in the API layer.
type ListingDraft struct {
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Location         string   `json:"location"`
	WorkType         string   `json:"work_type"`
	JobType          string   `json:"job_type"`
	ExperienceLevel  string   `json:"experience_type"`
	ExperienceMonths string   `json:"experience_months"`
	SalaryRange      string   `json:"salary_range"`
	RequiredSkills   []string `json:"required_skills"`
}
