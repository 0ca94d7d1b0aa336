// internal/models/profile.go
package models

// Candidate is a candidate profile as returned by the backend.
type Candidate struct {
	ID            string   `json:"id"`
	FullName      string   `json:"full_name"`
	Location      string   `json:"location"`
	PhoneNumber   string   `json:"phone_number"`
	LinkedInURL   *string  `json:"linkedin_url"`
	PortfolioURL  *string  `json:"portfolio_url"`
	ResumeURL     string   `json:"resume_url"`
	Skills        []string `json:"skills"`
	Experience    int      `json:"experience_years"`
	ExpectedRoles []string `json:"expected_roles"`
	CurrentStatus string   `json:"current_status"`
	CreatedAt     string   `json:"created_at"`
}

// CandidateForm carries the candidate onboarding fields. The resume
// file travels separately as a multipart part.
type CandidateForm struct {
	FullName        string
	Phone           string
	Location        string
	LinkedInURL     string
	PortfolioURL    string
	CurrentStatus   string
	ExperienceYears int
	Skills          []string
	ExpectedRoles   []string
}

// CompanyForm carries the company onboarding fields.
type CompanyForm struct {
	CompanyName        string `json:"company_name"`
	CompanyWebsite     string `json:"company_website,omitempty"`
	CompanySize        string `json:"company_size,omitempty"`
	Industry           string `json:"industry,omitempty"`
	ContactPerson      string `json:"contact_person,omitempty"`
	ContactPhone       string `json:"contact_phone,omitempty"`
	CompanyDescription string `json:"company_description,omitempty"`
}
