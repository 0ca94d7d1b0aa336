// internal/api/profile.go
package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	commonerrors "jobboard-client/internal/common/errors"
	"jobboard-client/internal/models"
)

// CreateCandidateProfile completes candidate onboarding. The resume
// travels as a multipart file part under resume_file; list fields go
// comma-joined, matching the backend's form parsing.
func (c *Client) CreateCandidateProfile(ctx context.Context, form models.CandidateForm, resumePath string) error {
	file, err := os.Open(resumePath)
	if err != nil {
		return commonerrors.NewValidationError(fmt.Sprintf("open resume: %v", err))
	}
	defer file.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	fields := map[string]string{
		"full_name":        form.FullName,
		"phone":            form.Phone,
		"location":         form.Location,
		"linkedin_url":     form.LinkedInURL,
		"portfolio_url":    form.PortfolioURL,
		"current_status":   form.CurrentStatus,
		"experience_years": strconv.Itoa(form.ExperienceYears),
		"skills":           strings.Join(form.Skills, ","),
		"expected_roles":   strings.Join(form.ExpectedRoles, ","),
	}
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return commonerrors.NewValidationError(fmt.Sprintf("encode form field %s: %v", key, err))
		}
	}

	part, err := writer.CreateFormFile("resume_file", filepath.Base(resumePath))
	if err != nil {
		return commonerrors.NewValidationError(fmt.Sprintf("encode resume part: %v", err))
	}
	if _, err := io.Copy(part, file); err != nil {
		return commonerrors.NewValidationError(fmt.Sprintf("read resume: %v", err))
	}
	if err := writer.Close(); err != nil {
		return commonerrors.NewValidationError(fmt.Sprintf("finalize form: %v", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/profile/createCandidate", &buf)
	if err != nil {
		return commonerrors.NewValidationError(fmt.Sprintf("build request: %v", err))
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.send(req, "create_candidate_profile", nil)
}

// CreateCompanyProfile completes company onboarding.
func (c *Client) CreateCompanyProfile(ctx context.Context, form models.CompanyForm) error {
	return c.doJSON(ctx, "create_company_profile", http.MethodPost, "/profile/createCompany", form, nil)
}
