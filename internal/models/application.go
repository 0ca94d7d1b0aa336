// internal/models/application.go
package models

import "time"

// Application is one of the candidate's submitted applications.
type Application struct {
	ApplicationID string    `json:"applicationId"`
	CandidateID   string    `json:"candidateId"`
	JobID         string    `json:"jobId"`
	Score         int       `json:"score"`
	Status        string    `json:"status"`
	AppliedAt     time.Time `json:"appliedAt"`
}

// PoolApplication is an application joined with candidate summary data,
// as seen by the posting company. Score is nil when the ranking service
// has not scored the application yet.
type PoolApplication struct {
	ApplicationID   string    `json:"applicationId"`
	CandidateID     string    `json:"candidateId"`
	JobID           string    `json:"jobId"`
	Score           *int      `json:"score,omitempty"`
	Status          string    `json:"status"`
	AppliedAt       time.Time `json:"appliedAt"`
	CandidateName   string    `json:"candidateName"`
	CandidateSkills []string  `json:"candidateSkills"`
}

// ScoreValue returns the ranking score with a missing score treated as 0.
func (p PoolApplication) ScoreValue() int {
	if p.Score == nil {
		return 0
	}
	return *p.Score
}

// ApplicantPool groups the applications received for one listing.
type ApplicantPool struct {
	JobID        string            `json:"jobId"`
	Applications []PoolApplication `json:"applications"`
}
