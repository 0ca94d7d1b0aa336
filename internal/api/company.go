// internal/api/company.go
package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	commonerrors "jobboard-client/internal/common/errors"
	"jobboard-client/internal/models"
)

// CreateListing posts a validated draft. The draft's field vocabulary
// is translated to the backend's here and only here.
func (c *Client) CreateListing(ctx context.Context, draft models.ListingDraft, experienceMonths int) error {
	body := listingRequest{
		Title:            draft.Title,
		Description:      draft.Description,
		Location:         draft.Location,
		WorkType:         draft.WorkType,
		JobType:          draft.JobType,
		ExperienceLevel:  draft.ExperienceLevel,
		ExperienceMonths: strconv.Itoa(experienceMonths),
		SalaryRange:      draft.SalaryRange,
		RequiredSkills:   draft.RequiredSkills,
	}
	return c.doJSON(ctx, "create_listing", http.MethodPost, "/company/createListing", body, nil)
}

type companyListingsResponse struct {
	Listings []wireJob `json:"Listings"`
}

// CompanyListings returns the company's own listings.
func (c *Client) CompanyListings(ctx context.Context) ([]models.Job, error) {
	var resp companyListingsResponse
	if err := c.doJSON(ctx, "company_listings", http.MethodGet, "/company/getListings", nil, &resp); err != nil {
		return nil, err
	}
	jobs := make([]models.Job, 0, len(resp.Listings))
	for _, w := range resp.Listings {
		jobs = append(jobs, w.toJob())
	}
	return jobs, nil
}

type deleteListingRequest struct {
	ListingID string `json:"listing_id"`
}

// DeleteListing removes one of the company's listings.
func (c *Client) DeleteListing(ctx context.Context, listingID string) error {
	if _, err := uuid.Parse(listingID); err != nil {
		return commonerrors.NewValidationError("invalid listing id")
	}
	body := deleteListingRequest{ListingID: listingID}
	return c.doJSON(ctx, "delete_listing", http.MethodPost, "/company/deleteListing", body, nil)
}

type applicantsResponse struct {
	Applications []wirePool `json:"applications"`
}

// Applicants returns the applicant pools for all of the company's
// listings.
func (c *Client) Applicants(ctx context.Context) ([]models.ApplicantPool, error) {
	var resp applicantsResponse
	if err := c.doJSON(ctx, "applicants", http.MethodGet, "/company/Applicants", nil, &resp); err != nil {
		return nil, err
	}
	pools := make([]models.ApplicantPool, 0, len(resp.Applications))
	for _, w := range resp.Applications {
		pools = append(pools, w.toPool())
	}
	return pools, nil
}
