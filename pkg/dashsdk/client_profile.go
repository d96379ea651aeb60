package dashsdk

import (
	"context"
	"net/http"
)

func (c *Client) Profile(ctx context.Context) (*ProfileResponse, error) {
	var out ProfileResponse
	if err := c.do(ctx, http.MethodGet, "/api/profile", nil, &out, nil, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateName changes the signed-in user's full name.
func (c *Client) UpdateName(ctx context.Context, fullName string) (string, error) {
	var out MessageResponse
	req := UpdateProfileRequest{FullName: fullName}
	if err := c.do(ctx, http.MethodPost, "/api/profile/update", req, &out, nil, http.StatusOK); err != nil {
		return "", err
	}
	return out.Message, nil
}

// ChangePassword checks the confirmation locally, as the profile form does,
// before sending the change.
func (c *Client) ChangePassword(ctx context.Context, newPassword, confirm string) (string, error) {
	if newPassword != confirm {
		return "", ErrPasswordsDiffer
	}

	var out MessageResponse
	req := ChangePasswordRequest{NewPassword: newPassword, ConfirmPassword: confirm}
	if err := c.do(ctx, http.MethodPost, "/api/profile/change-password", req, &out, nil, http.StatusOK); err != nil {
		return "", err
	}
	return out.Message, nil
}
