// internal/models/user.go
package models

const (
	RoleCandidate = "candidate"
	RoleCompany   = "company"
	RoleAdmin     = "admin"
)

// UserProfile is the authenticated user's account summary.
type UserProfile struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Role            string `json:"role"`
	NeedsOnboarding bool   `json:"needsOnboarding"`
}

// LoginResult reports the outcome of a successful login.
type LoginResult struct {
	Role            string
	NeedsOnboarding bool
}
