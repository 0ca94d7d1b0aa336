// Package review gives a company a ranked view of its applicant pools.
// Pools are sorted by score descending with a missing score treated as
// 0; equal scores tie-break on the application time, earliest first, so
// the ordering is deterministic across re-fetches.
package review

import (
	"context"
	"sort"
	"sync"

	"jobboard-client/internal/common/logger"
	"jobboard-client/internal/models"
)

// APIClient is the slice of the API client this workflow needs.
type APIClient interface {
	Applicants(ctx context.Context) ([]models.ApplicantPool, error)
	Candidate(ctx context.Context, candidateID string) (*models.Candidate, error)
}

type Service struct {
	client APIClient
	logger logger.Logger

	mu    sync.Mutex
	pools []models.ApplicantPool
}

func NewService(client APIClient, log logger.Logger) *Service {
	return &Service{
		client: client,
		logger: log,
		pools:  []models.ApplicantPool{},
	}
}

// Refresh fetches the applicant pools. A failure degrades to an empty
// view with log-only diagnostics; the user just sees no applicants.
func (s *Service) Refresh(ctx context.Context) {
	pools, err := s.client.Applicants(ctx)
	if err != nil {
		s.logger.Warn("could not fetch applicant pools", map[string]interface{}{
			"error": err.Error(),
		})
		pools = []models.ApplicantPool{}
	}

	for i := range pools {
		rankApplications(pools[i].Applications)
	}

	s.mu.Lock()
	s.pools = pools
	s.mu.Unlock()
}

// Pools returns the ranked pools.
func (s *Service) Pools() []models.ApplicantPool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pools
}

// SelectApplicant lazily fetches one candidate's full profile. Profiles
// are never pre-fetched with the pools.
func (s *Service) SelectApplicant(ctx context.Context, candidateID string) (*models.Candidate, error) {
	return s.client.Candidate(ctx, candidateID)
}

// rankApplications orders by score descending, missing score as 0,
// earliest applicant first among equals.
func rankApplications(apps []models.PoolApplication) {
	sort.SliceStable(apps, func(i, j int) bool {
		si, sj := apps[i].ScoreValue(), apps[j].ScoreValue()
		if si != sj {
			return si > sj
		}
		return apps[i].AppliedAt.Before(apps[j].AppliedAt)
	})
}
