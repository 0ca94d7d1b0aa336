// internal/api/wire.go
//
// Wire structs for the backend's schema. Field names here are the
// backend's, not ours; this file is the remapping table between the two
// vocabularies.

package api

import (
	"bytes"
	"strconv"
	"time"

	"jobboard-client/internal/models"
)

// monthCount decodes the backend's experience_months field, which has
// shipped both as a JSON number and as a quoted digit string. Values
// that cannot be parsed, and negative values, decode to 0.
type monthCount int

func (m *monthCount) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(bytes.TrimSpace(data), `"`)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*m = 0
		return nil
	}
	n, err := strconv.Atoi(string(data))
	if err != nil || n < 0 {
		*m = 0
		return nil
	}
	*m = monthCount(n)
	return nil
}

type wireJob struct {
	ID               string     `json:"ID"`
	CompanyID        string     `json:"Company_id"`
	Title            string     `json:"Listing_title"`
	Description      string     `json:"Description"`
	Location         string     `json:"Location"`
	WorkType         string     `json:"Work_type"`
	JobType          string     `json:"Job_type"`
	ExperienceLevel  string     `json:"Experience_type"`
	ExperienceMonths monthCount `json:"Experience_months"`
	SalaryRange      string     `json:"Salary_range"`
	RequiredSkills   []string   `json:"Required_skills"`
	CreatedAt        string     `json:"created_at"`
}

func (w wireJob) toJob() models.Job {
	skills := w.RequiredSkills
	if skills == nil {
		skills = []string{}
	}
	return models.Job{
		ID:               w.ID,
		Title:            w.Title,
		CompanyID:        w.CompanyID,
		Description:      w.Description,
		Location:         w.Location,
		WorkType:         w.WorkType,
		JobType:          w.JobType,
		ExperienceLevel:  w.ExperienceLevel,
		ExperienceMonths: int(w.ExperienceMonths),
		SalaryRange:      w.SalaryRange,
		RequiredSkills:   skills,
		CreatedAt:        w.CreatedAt,
	}
}

type wireApplication struct {
	ApplicationID string    `json:"ApplicationID"`
	CandidateID   string    `json:"CandidateID"`
	JobID         string    `json:"JobID"`
	Score         int       `json:"Score"`
	Status        string    `json:"Status"`
	AppliedAt     time.Time `json:"AppliedAt"`
}

func (w wireApplication) toApplication() models.Application {
	return models.Application{
		ApplicationID: w.ApplicationID,
		CandidateID:   w.CandidateID,
		JobID:         w.JobID,
		Score:         w.Score,
		Status:        w.Status,
		AppliedAt:     w.AppliedAt,
	}
}

type wirePoolApplication struct {
	ApplicationID   string    `json:"ApplicationID"`
	CandidateID     string    `json:"CandidateID"`
	JobID           string    `json:"JobID"`
	Score           *int      `json:"Score"`
	Status          string    `json:"Status"`
	AppliedAt       time.Time `json:"AppliedAt"`
	CandidateName   string    `json:"CandidateName"`
	CandidateSkills []string  `json:"CandidateSkills"`
}

type wirePool struct {
	JobID        string                `json:"JobID"`
	Applications []wirePoolApplication `json:"Applications"`
}

func (w wirePool) toPool() models.ApplicantPool {
	apps := make([]models.PoolApplication, 0, len(w.Applications))
	for _, a := range w.Applications {
		skills := a.CandidateSkills
		if skills == nil {
			skills = []string{}
		}
		apps = append(apps, models.PoolApplication{
			ApplicationID:   a.ApplicationID,
			CandidateID:     a.CandidateID,
			JobID:           a.JobID,
			Score:           a.Score,
			Status:          a.Status,
			AppliedAt:       a.AppliedAt,
			CandidateName:   a.CandidateName,
			CandidateSkills: skills,
		})
	}
	return models.ApplicantPool{JobID: w.JobID, Applications: apps}
}

// listingRequest is the create-listing payload. The backend declares
// experience months as a string, so the normalized integer is sent in
// its decimal form.
type listingRequest struct {
	Title            string   `json:"Listing_title"`
	Description      string   `json:"description"`
	Location         string   `json:"location"`
	WorkType         string   `json:"work_type"`
	JobType          string   `json:"job_type"`
	ExperienceLevel  string   `json:"experience_type"`
	ExperienceMonths string   `json:"experience_months"`
	SalaryRange      string   `json:"salary_range"`
	RequiredSkills   []string `json:"required_skills"`
}
