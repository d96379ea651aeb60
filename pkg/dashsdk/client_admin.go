package dashsdk

import (
	"context"
	"net/http"
)

// ListUsers requires the user management module to be visible.
func (c *Client) ListUsers(ctx context.Context) ([]ProfileResponse, error) {
	var out UsersResponse
	if err := c.do(ctx, http.MethodGet, "/api/users", nil, &out, nil, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Users, nil
}

func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) (*ProfileResponse, error) {
	var out UserResponse
	if err := c.do(ctx, http.MethodPost, "/api/admin/create-user", req, &out, nil, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (c *Client) UpdateUser(ctx context.Context, req UpdateUserRequest) (*ProfileResponse, error) {
	var out UserResponse
	if err := c.do(ctx, http.MethodPost, "/api/admin/update-user", req, &out, nil, http.StatusOK); err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (c *Client) DeleteUser(ctx context.Context, userID string) error {
	return c.do(ctx, http.MethodPost, "/api/admin/delete-user", DeleteUserRequest{UserID: userID}, nil, nil, http.StatusOK)
}

func (c *Client) ResetUserPassword(ctx context.Context, userID, newPassword string) error {
	req := ResetUserPasswordRequest{UserID: userID, NewPassword: newPassword}
	return c.do(ctx, http.MethodPost, "/api/admin/reset-user-password", req, nil, nil, http.StatusOK)
}
