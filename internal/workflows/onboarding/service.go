// Package onboarding completes a fresh account's profile: candidates
// upload a resume alongside their details, companies submit a plain
// JSON profile.
package onboarding

import (
	"context"
	"strings"

	commonerrors "jobboard-client/internal/common/errors"
	"jobboard-client/internal/common/logger"
	"jobboard-client/internal/models"
)

// APIClient is the slice of the API client this workflow needs.
type APIClient interface {
	CreateCandidateProfile(ctx context.Context, form models.CandidateForm, resumePath string) error
	CreateCompanyProfile(ctx context.Context, form models.CompanyForm) error
}

type Service struct {
	client APIClient
	logger logger.Logger
}

func NewService(client APIClient, log logger.Logger) *Service {
	return &Service{client: client, logger: log}
}

// CompleteCandidate validates and submits the candidate profile with
// the resume file.
func (s *Service) CompleteCandidate(ctx context.Context, form models.CandidateForm, resumePath string) error {
	if strings.TrimSpace(form.FullName) == "" {
		return commonerrors.NewValidationError("full name is required")
	}
	if strings.TrimSpace(form.CurrentStatus) == "" {
		return commonerrors.NewValidationError("current status is required")
	}
	if len(form.ExpectedRoles) == 0 {
		return commonerrors.NewValidationError("at least one expected role is required")
	}
	if strings.TrimSpace(resumePath) == "" {
		return commonerrors.NewValidationError("resume file is required")
	}
	if form.ExperienceYears < 0 {
		return commonerrors.NewValidationError("experience years cannot be negative")
	}

	if err := s.client.CreateCandidateProfile(ctx, form, resumePath); err != nil {
		return err
	}
	s.logger.Info("candidate profile completed", map[string]interface{}{
		"full_name": form.FullName,
	})
	return nil
}

// CompleteCompany validates and submits the company profile.
func (s *Service) CompleteCompany(ctx context.Context, form models.CompanyForm) error {
	if strings.TrimSpace(form.CompanyName) == "" {
		return commonerrors.NewValidationError("company name is required")
	}

	if err := s.client.CreateCompanyProfile(ctx, form); err != nil {
		return err
	}
	s.logger.Info("company profile completed", map[string]interface{}{
		"company_name": form.CompanyName,
	})
	return nil
}
