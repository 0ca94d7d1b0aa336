// internal/api/auth.go
package api

import (
	"context"
	"net/http"

	"jobboard-client/internal/models"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	NeedsOnboarding bool   `json:"needsOnboarding"`
	Role            string `json:"role"`
}

// Register creates an account. Role must be candidate or company.
func (c *Client) Register(ctx context.Context, username, email, password, role string) error {
	body := registerRequest{Username: username, Email: email, Password: password, Role: role}
	return c.doJSON(ctx, "auth_register", http.MethodPost, "/auth/register", body, nil)
}

// Login authenticates and stores the credential cookie in the shared
// jar. The backend reports whether onboarding is still pending.
func (c *Client) Login(ctx context.Context, email, password string) (*models.LoginResult, error) {
	var resp loginResponse
	body := loginRequest{Email: email, Password: password}
	if err := c.doJSON(ctx, "auth_login", http.MethodPost, "/auth/login", body, &resp); err != nil {
		return nil, err
	}
	return &models.LoginResult{Role: resp.Role, NeedsOnboarding: resp.NeedsOnboarding}, nil
}

// Logout clears the cookie server-side and locally.
func (c *Client) Logout(ctx context.Context) error {
	err := c.doJSON(ctx, "auth_logout", http.MethodPost, "/auth/logout", nil, nil)
	c.ResetSession()
	return err
}

// GetProfile returns the logged-in user's account summary.
func (c *Client) GetProfile(ctx context.Context) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := c.doJSON(ctx, "get_profile", http.MethodGet, "/getProfile", nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
