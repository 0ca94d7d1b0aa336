// Package application handles the candidate's application lifecycle:
// submitting, listing and withdrawing applications. The session's
// applied-job set is consulted before any network call so a duplicate
// submission never leaves the client.
package application

import (
	"context"
	"sync"

	commonerrors "jobboard-client/internal/common/errors"
	"jobboard-client/internal/common/logger"
	"jobboard-client/internal/models"
	"jobboard-client/internal/session"
)

// APIClient is the slice of the API client this workflow needs.
type APIClient interface {
	Apply(ctx context.Context, jobID string) error
	Applications(ctx context.Context) ([]models.Application, error)
	DeleteApplication(ctx context.Context, applicationID string) error
	Listing(ctx context.Context, jobID string) (*models.Job, error)
}

// Confirmer gates destructive operations behind a blocking yes/no
// prompt.
type Confirmer interface {
	Confirm(prompt string) bool
}

type Service struct {
	client    APIClient
	store     session.Store
	confirmer Confirmer
	logger    logger.Logger

	mu      sync.Mutex
	visible []models.Application
}

func NewService(client APIClient, store session.Store, confirmer Confirmer, log logger.Logger) *Service {
	return &Service{
		client:    client,
		store:     store,
		confirmer: confirmer,
		logger:    log,
		visible:   []models.Application{},
	}
}

// Apply submits an application for jobID. Jobs already in the applied
// set are refused without a network call; on success the id is added
// to the set so repeated attempts become no-ops.
func (s *Service) Apply(ctx context.Context, jobID string) error {
	applied, err := s.store.HasApplied(ctx, jobID)
	if err != nil {
		return err
	}
	if applied {
		return commonerrors.NewDuplicateApplicationError(jobID)
	}

	if err := s.client.Apply(ctx, jobID); err != nil {
		return err
	}

	if err := s.store.MarkApplied(ctx, jobID); err != nil {
		// The application went through; a store failure only weakens
		// the duplicate guard for this session.
		s.logger.Warn("could not record applied job", map[string]interface{}{
			"job_id": jobID,
			"error":  err.Error(),
		})
	}

	s.logger.Info("application submitted", map[string]interface{}{
		"job_id": jobID,
	})
	return nil
}

// HasApplied reports whether the session already applied to jobID.
func (s *Service) HasApplied(ctx context.Context, jobID string) bool {
	applied, err := s.store.HasApplied(ctx, jobID)
	if err != nil {
		return false
	}
	return applied
}

// Refresh loads the candidate's applications into the visible list.
func (s *Service) Refresh(ctx context.Context) error {
	apps, err := s.client.Applications(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.visible = apps
	s.mu.Unlock()
	return nil
}

// Visible returns the cached application list.
func (s *Service) Visible() []models.Application {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visible
}

// Withdraw deletes an application after an interactive confirmation.
// A declined confirmation issues no request. On success the record is
// removed from the visible list; on failure the list is untouched and
// the backend's message is surfaced.
func (s *Service) Withdraw(ctx context.Context, applicationID string) error {
	if !s.confirmer.Confirm("Withdraw this application?") {
		return commonerrors.NewConfirmationDeclinedError("withdraw application")
	}

	if err := s.client.DeleteApplication(ctx, applicationID); err != nil {
		return err
	}

	s.mu.Lock()
	kept := s.visible[:0:0]
	for _, app := range s.visible {
		if app.ApplicationID != applicationID {
			kept = append(kept, app)
		}
	}
	s.visible = kept
	s.mu.Unlock()

	s.logger.Info("application withdrawn", map[string]interface{}{
		"application_id": applicationID,
	})
	return nil
}

// ListingDetail lazily fetches the listing an application points at.
func (s *Service) ListingDetail(ctx context.Context, jobID string) (*models.Job, error) {
	return s.client.Listing(ctx, jobID)
}
