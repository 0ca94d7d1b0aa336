// internal/api/candidate.go
package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	commonerrors "jobboard-client/internal/common/errors"
	"jobboard-client/internal/models"
)

type listingsResponse struct {
	Listings []wireJob `json:"listings"`
	Count    int       `json:"count"`
}

// SearchJobs fetches the listings matching criteria. Scalar filters are
// serialized only when non-empty and skills as repeated parameters, so
// empty criteria produce a request with no query string at all.
func (c *Client) SearchJobs(ctx context.Context, criteria models.FilterCriteria) ([]models.Job, error) {
	params := url.Values{}
	if criteria.WorkType != "" {
		params.Set("WorkType", criteria.WorkType)
	}
	if criteria.JobType != "" {
		params.Set("JobType", criteria.JobType)
	}
	if criteria.ExperienceLevel != "" {
		params.Set("ExperienceLevel", criteria.ExperienceLevel)
	}
	if criteria.SalaryRange != "" {
		params.Set("SalaryRange", criteria.SalaryRange)
	}
	for _, skill := range criteria.RequiredSkills {
		params.Add("RequiredSkills", skill)
	}

	path := "/candidate/getJobs"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var resp listingsResponse
	if err := c.doJSON(ctx, "search_jobs", http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}

	jobs := make([]models.Job, 0, len(resp.Listings))
	for _, w := range resp.Listings {
		jobs = append(jobs, w.toJob())
	}
	return jobs, nil
}

type applyRequest struct {
	JobID string `json:"jobId"`
}

// Apply submits an application for the job. The id is validated before
// any request is issued, mirroring the backend's own parsing.
func (c *Client) Apply(ctx context.Context, jobID string) error {
	if _, err := uuid.Parse(jobID); err != nil {
		return commonerrors.NewValidationError("invalid job id")
	}
	return c.doJSON(ctx, "apply", http.MethodPost, "/candidate/apply", applyRequest{JobID: jobID}, nil)
}

type applicationsResponse struct {
	Applications []wireApplication `json:"applications"`
}

// Applications returns the candidate's submitted applications.
func (c *Client) Applications(ctx context.Context) ([]models.Application, error) {
	var resp applicationsResponse
	if err := c.doJSON(ctx, "applications", http.MethodGet, "/candidate/Applications", nil, &resp); err != nil {
		return nil, err
	}
	apps := make([]models.Application, 0, len(resp.Applications))
	for _, w := range resp.Applications {
		apps = append(apps, w.toApplication())
	}
	return apps, nil
}

type deleteApplicationRequest struct {
	ApplicationID string `json:"application_id"`
}

// DeleteApplication withdraws one of the candidate's applications.
func (c *Client) DeleteApplication(ctx context.Context, applicationID string) error {
	if _, err := uuid.Parse(applicationID); err != nil {
		return commonerrors.NewValidationError("invalid application id")
	}
	body := deleteApplicationRequest{ApplicationID: applicationID}
	return c.doJSON(ctx, "delete_application", http.MethodPost, "/candidate/deleteApplication", body, nil)
}

// Candidate fetches one candidate profile by id.
func (c *Client) Candidate(ctx context.Context, candidateID string) (*models.Candidate, error) {
	if _, err := uuid.Parse(candidateID); err != nil {
		return nil, commonerrors.NewValidationError("invalid candidate id")
	}
	var candidate models.Candidate
	if err := c.doJSON(ctx, "candidate", http.MethodGet, "/candidate/"+candidateID, nil, &candidate); err != nil {
		return nil, err
	}
	if candidate.Skills == nil {
		candidate.Skills = []string{}
	}
	if candidate.ExpectedRoles == nil {
		candidate.ExpectedRoles = []string{}
	}
	return &candidate, nil
}

type listingDetailResponse struct {
	Job wireJob `json:"job"`
}

// Listing fetches one listing's full detail.
func (c *Client) Listing(ctx context.Context, jobID string) (*models.Job, error) {
	if _, err := uuid.Parse(jobID); err != nil {
		return nil, commonerrors.NewValidationError("invalid job id")
	}
	var resp listingDetailResponse
	if err := c.doJSON(ctx, "listing_detail", http.MethodGet, "/getListing/"+jobID, nil, &resp); err != nil {
		return nil, err
	}
	job := resp.Job.toJob()
	return &job, nil
}
