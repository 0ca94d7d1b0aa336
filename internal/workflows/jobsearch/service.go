// Package jobsearch manages the candidate's filter state and the
// result set it drives. Every accepted filter update re-queries the
// backend with the full current criteria; responses carry a generation
// token so a slow stale response can never overwrite a fresher set.
package jobsearch

import (
	"context"
	"fmt"
	"strings"
	"sync"

	commonerrors "jobboard-client/internal/common/errors"
	"jobboard-client/internal/common/logger"
	"jobboard-client/internal/common/metrics"
	"jobboard-client/internal/models"
)

// Field names accepted by SetField.
const (
	FieldWorkType        = "work_type"
	FieldJobType         = "job_type"
	FieldExperienceLevel = "experience_level"
	FieldSalaryRange     = "salary_range"
)

// SearchClient is the slice of the API client this workflow needs.
type SearchClient interface {
	SearchJobs(ctx context.Context, criteria models.FilterCriteria) ([]models.Job, error)
}

// Service owns the filter criteria and the displayed result set.
type Service struct {
	client SearchClient
	logger logger.Logger

	mu       sync.Mutex
	criteria models.FilterCriteria
	jobs     []models.Job
	errMsg   string

	// generation tokens for the stale-response guard
	dispatched uint64
	applied    uint64
}

func NewService(client SearchClient, log logger.Logger) *Service {
	return &Service{
		client: client,
		logger: log,
		jobs:   []models.Job{},
	}
}

// SetField replaces one scalar filter field and re-queries. Unknown
// field names are rejected without touching the criteria.
func (s *Service) SetField(ctx context.Context, name, value string) error {
	s.mu.Lock()
	switch name {
	case FieldWorkType:
		s.criteria.WorkType = value
	case FieldJobType:
		s.criteria.JobType = value
	case FieldExperienceLevel:
		s.criteria.ExperienceLevel = value
	case FieldSalaryRange:
		s.criteria.SalaryRange = value
	default:
		s.mu.Unlock()
		return commonerrors.NewValidationError(fmt.Sprintf("unknown filter field %q", name))
	}
	criteria, token := s.snapshotLocked()
	s.mu.Unlock()

	s.fetch(ctx, criteria, token)
	return nil
}

// AddSkill appends a skill to the criteria. Blank or duplicate skills
// are a no-op and trigger no re-query.
func (s *Service) AddSkill(ctx context.Context, skill string) {
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return
	}

	s.mu.Lock()
	for _, existing := range s.criteria.RequiredSkills {
		if existing == skill {
			s.mu.Unlock()
			return
		}
	}
	s.criteria.RequiredSkills = append(s.criteria.RequiredSkills, skill)
	criteria, token := s.snapshotLocked()
	s.mu.Unlock()

	s.fetch(ctx, criteria, token)
}

// Refresh re-queries with the unchanged current criteria.
func (s *Service) Refresh(ctx context.Context) {
	s.mu.Lock()
	criteria, token := s.snapshotLocked()
	s.mu.Unlock()

	s.fetch(ctx, criteria, token)
}

// snapshotLocked copies the criteria and mints the next generation
// token. Caller holds the lock.
func (s *Service) snapshotLocked() (models.FilterCriteria, uint64) {
	s.dispatched++
	criteria := s.criteria
	criteria.RequiredSkills = append([]string(nil), s.criteria.RequiredSkills...)
	return criteria, s.dispatched
}

// fetch runs one query and applies its result only if no newer query
// was dispatched meanwhile. Failures become an empty displayed set with
// a recorded message; nothing propagates.
func (s *Service) fetch(ctx context.Context, criteria models.FilterCriteria, token uint64) {
	jobs, err := s.client.SearchJobs(ctx, criteria)

	s.mu.Lock()
	defer s.mu.Unlock()

	if token < s.dispatched || token <= s.applied {
		metrics.SearchesDiscarded.Inc()
		s.logger.Debug("discarding stale search response", map[string]interface{}{
			"token":  token,
			"latest": s.dispatched,
		})
		return
	}
	s.applied = token

	if err != nil {
		s.logger.Warn("job search failed", map[string]interface{}{
			"error": err.Error(),
		})
		s.jobs = []models.Job{}
		s.errMsg = commonerrors.UserMessage(err)
		return
	}

	s.jobs = jobs
	s.errMsg = ""
}

// Jobs returns the currently displayed result set.
func (s *Service) Jobs() []models.Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jobs
}

// ErrMessage returns the message for the last failed query, or "".
func (s *Service) ErrMessage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// Criteria returns a copy of the current filter criteria.
func (s *Service) Criteria() models.FilterCriteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	criteria := s.criteria
	criteria.RequiredSkills = append([]string(nil), s.criteria.RequiredSkills...)
	return criteria
}
