// internal/workflows/listing/service.go
package listing

import (
	"context"
	"sync"

	commonerrors "jobboard-client/internal/common/errors"
	"jobboard-client/internal/common/logger"
	"jobboard-client/internal/models"
)

// APIClient is the slice of the API client this workflow needs.
type APIClient interface {
	CreateListing(ctx context.Context, draft models.ListingDraft, experienceMonths int) error
	CompanyListings(ctx context.Context) ([]models.Job, error)
	DeleteListing(ctx context.Context, listingID string) error
}

// Confirmer gates destructive operations behind a blocking yes/no
// prompt.
type Confirmer interface {
	Confirm(prompt string) bool
}

type Service struct {
	client    APIClient
	confirmer Confirmer
	logger    logger.Logger

	draft *Draft

	mu       sync.Mutex
	listings []models.Job
}

func NewService(client APIClient, confirmer Confirmer, log logger.Logger) *Service {
	return &Service{
		client:    client,
		confirmer: confirmer,
		logger:    log,
		draft:     NewDraft(),
		listings:  []models.Job{},
	}
}

// Draft exposes the in-progress form.
func (s *Service) Draft() *Draft {
	return s.draft
}

// Create validates the draft, submits it, discards the form and
// re-fetches the collection so the displayed state is the server's.
// There is no optimistic insert. A failed submission keeps the draft
// for correction.
func (s *Service) Create(ctx context.Context) error {
	form := s.draft.Form()
	months, err := ValidateDraft(form)
	if err != nil {
		return err
	}

	if err := s.client.CreateListing(ctx, form, months); err != nil {
		return err
	}

	s.draft.Reset()
	s.logger.Info("listing created", map[string]interface{}{
		"title": form.Title,
	})

	return s.Refresh(ctx)
}

// Refresh loads the company's listings.
func (s *Service) Refresh(ctx context.Context) error {
	listings, err := s.client.CompanyListings(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.listings = listings
	s.mu.Unlock()
	return nil
}

// Listings returns the cached collection.
func (s *Service) Listings() []models.Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listings
}

// Delete removes a listing after an interactive confirmation. Declined
// means no request; failure leaves the cached state untouched.
func (s *Service) Delete(ctx context.Context, listingID string) error {
	if !s.confirmer.Confirm("Delete this listing?") {
		return commonerrors.NewConfirmationDeclinedError("delete listing")
	}

	if err := s.client.DeleteListing(ctx, listingID); err != nil {
		return err
	}

	s.logger.Info("listing deleted", map[string]interface{}{
		"listing_id": listingID,
	})
	return s.Refresh(ctx)
}
