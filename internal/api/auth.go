package api

import (
	"context"

	"github.com/bac-2005/HeThongPhongTroTrucTuyen-sub000/internal/models"
)

const areaAuth = "auth"

// LoginResponse is what POST /auth/login returns.
type LoginResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Login authenticates and returns the token plus profile snapshot. The
// caller stores both in the session repository.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var resp LoginResponse
	if err := c.doPost(ctx, areaAuth, "/auth/login", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Me fetches the current profile.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.doGet(ctx, areaAuth, "/auth/me", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile replaces the profile fields and returns the updated record.
func (c *Client) UpdateProfile(ctx context.Context, user *models.User) (*models.User, error) {
	var updated models.User
	if err := c.doPut(ctx, areaAuth, "/auth/profile", user, &updated); err != nil {
		return nil, err
	}
	c.invalidate(ctx, "/auth/me")
	return &updated, nil
}

// ChangePassword swaps the account password.
func (c *Client) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	body := map[string]string{"oldPassword": oldPassword, "newPassword": newPassword}
	return c.doPut(ctx, areaAuth, "/auth/password", body, nil)
}
