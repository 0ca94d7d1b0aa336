// internal/api/profile_test.go
package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard-client/internal/models"
)

func TestCreateCandidateProfile_MultipartForm(t *testing.T) {
	resumePath := filepath.Join(t.TempDir(), "resume.pdf")
	require.NoError(t, os.WriteFile(resumePath, []byte("%PDF-1.4 fake resume"), 0o600))

	var gotFields map[string]string
	var gotResume []byte
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/profile/createCandidate", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(10<<20))

		gotFields = map[string]string{}
		for key := range r.MultipartForm.Value {
			gotFields[key] = r.PostFormValue(key)
		}

		file, header, err := r.FormFile("resume_file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "resume.pdf", header.Filename)
		gotResume, err = io.ReadAll(file)
		require.NoError(t, err)

		_ = json.NewEncoder(w).Encode(map[string]string{"Message": "Candidate created successfully"})
	}))

	form := models.CandidateForm{
		FullName:        "Dana Smith",
		Phone:           "555-0101",
		Location:        "Berlin",
		LinkedInURL:     "https://linkedin.com/in/dana",
		CurrentStatus:   "ACTIVELY_LOOKING",
		ExperienceYears: 3,
		Skills:          []string{"Go", "SQL"},
		ExpectedRoles:   []string{"Backend Engineer", "SRE"},
	}
	require.NoError(t, client.CreateCandidateProfile(context.Background(), form, resumePath))

	assert.Equal(t, "Dana Smith", gotFields["full_name"])
	assert.Equal(t, "555-0101", gotFields["phone"])
	assert.Equal(t, "3", gotFields["experience_years"])
	assert.Equal(t, "Go,SQL", gotFields["skills"], "lists travel comma-joined")
	assert.Equal(t, "Backend Engineer,SRE", gotFields["expected_roles"])
	assert.Equal(t, []byte("%PDF-1.4 fake resume"), gotResume)
}

func TestCreateCompanyProfile_PostsJSON(t *testing.T) {
	var got models.CompanyForm
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/profile/createCompany", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(map[string]string{"Message": "Company created successfully"})
	}))

	form := models.CompanyForm{
		CompanyName:   "Acme GmbH",
		CompanySize:   "MEDIUM",
		Industry:      "Software",
		ContactPerson: "Sam Lee",
	}
	require.NoError(t, client.CreateCompanyProfile(context.Background(), form))
	assert.Equal(t, "Acme GmbH", got.CompanyName)
	assert.Equal(t, "MEDIUM", got.CompanySize)
}
