package api

import (
	"context"
	"net/url"

	"github.com/bac-2005/HeThongPhongTroTrucTuyen-sub000/internal/models"
)

const (
	areaUsers     = "users"
	areaApprovals = "approvals"
)

// ListUsers is an admin-only listing.
func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.doGet(ctx, areaUsers, "/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) UpdateUser(ctx context.Context, user *models.User) (*models.User, error) {
	var updated models.User
	if err := c.doPut(ctx, areaUsers, "/users/"+url.PathEscape(user.ID), user, &updated); err != nil {
		return nil, err
	}
	c.invalidate(ctx, "/users")
	return &updated, nil
}

func (c *Client) ListApprovals(ctx context.Context) ([]models.Approval, error) {
	var approvals []models.Approval
	if err := c.doGet(ctx, areaApprovals, "/approvals", &approvals); err != nil {
		return nil, err
	}
	return approvals, nil
}

// UpdateApproval records an admin decision on a listing or booking.
func (c *Client) UpdateApproval(ctx context.Context, approval *models.Approval) error {
	if err := c.doPut(ctx, areaApprovals, "/approvals/"+url.PathEscape(approval.ID), approval, nil); err != nil {
		return err
	}
	c.invalidate(ctx, "/approvals")
	return nil
}
