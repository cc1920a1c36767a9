package client

import (
	"context"
	"fmt"
)

// RegisterRequest is a registration payload
type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	CompanyName string `json:"company_name,omitempty"`
}

// AuthResponse is returned by login, register and refresh
type AuthResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         *User  `json:"user,omitempty"`
}

// Login authenticates with email and password. The access token is
// retained for subsequent requests.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	req := map[string]string{
		"email":    email,
		"password": password,
	}

	var resp AuthResponse
	if err := c.doRequest(ctx, "POST", "/api/v1/auth/login", req, &resp); err != nil {
		return nil, err
	}

	if resp.AccessToken != "" {
		c.SetToken(resp.AccessToken)
	}

	return &resp, nil
}

// Register creates a new account on the free plan
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.doRequest(ctx, "POST", "/api/v1/auth/register", req, &resp); err != nil {
		return nil, err
	}

	if resp.AccessToken != "" {
		c.SetToken(resp.AccessToken)
	}

	return &resp, nil
}

// RefreshToken exchanges a refresh token for a new token pair
func (c *Client) RefreshToken(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	req := map[string]string{"refresh_token": refreshToken}

	var resp AuthResponse
	if err := c.doRequest(ctx, "POST", "/api/v1/auth/refresh", req, &resp); err != nil {
		return nil, err
	}

	if resp.AccessToken != "" {
		c.SetToken(resp.AccessToken)
	}

	return &resp, nil
}

// GetCurrentUser retrieves the authenticated user
func (c *Client) GetCurrentUser(ctx context.Context) (*User, error) {
	var u User
	if err := c.doRequest(ctx, "GET", "/api/v1/auth/me", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Logout logs out and clears the retained token
func (c *Client) Logout(ctx context.Context) error {
	if err := c.doRequest(ctx, "POST", "/api/v1/auth/logout", nil, nil); err != nil {
		return err
	}
	c.SetToken("")
	return nil
}

// Usage retrieves the current month's usage status
func (c *Client) Usage(ctx context.Context) (*UsageStatus, error) {
	var status UsageStatus
	if err := c.doRequest(ctx, "GET", "/api/v1/usage", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// Plans retrieves the plan catalog. No authentication required.
func (c *Client) Plans(ctx context.Context) ([]Plan, error) {
	var plans []Plan
	if err := c.doRequest(ctx, "GET", "/api/v1/billing/plans", nil, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

// BillingInfo retrieves the account's current plan
func (c *Client) BillingInfo(ctx context.Context) (*BillingInfo, error) {
	var info BillingInfo
	if err := c.doRequest(ctx, "GET", "/api/v1/billing", nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// ChangePlan moves the account to another plan tier
func (c *Client) ChangePlan(ctx context.Context, plan string) error {
	req := map[string]string{"plan": plan}
	return c.doRequest(ctx, "PUT", "/api/v1/billing/plan", req, nil)
}

func addQuery(q, key string, value int) string {
	sep := "?"
	if q != "" {
		sep = "&"
	}
	return q + fmt.Sprintf("%s%s=%d", sep, key, value)
}
