package dashsdk

import (
	"context"
	"net/http"
)

// Login signs in and primes the CSRF token for later writes.
func (c *Client) Login(ctx context.Context, email, password string) (*SessionResponse, error) {
	req := LoginRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/api/login", req, nil, nil, http.StatusOK); err != nil {
		return nil, err
	}
	return c.Session(ctx)
}

// Session is the session check every page runs on load. It returns an
// *APIError with status 401 when nobody is signed in.
func (c *Client) Session(ctx context.Context) (*SessionResponse, error) {
	var out SessionResponse
	if err := c.do(ctx, http.MethodGet, "/api/session", nil, &out, nil, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout ends the current session.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/logout", nil, nil, nil, http.StatusOK)
}

// DashboardSummary returns the home page counters.
func (c *Client) DashboardSummary(ctx context.Context) (*DashboardSummaryResponse, error) {
	var out DashboardSummaryResponse
	if err := c.do(ctx, http.MethodGet, "/api/dashboard/summary", nil, &out, nil, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
