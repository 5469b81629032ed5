package api

import (
	"context"
	"net/url"

	"github.com/bac-2005/HeThongPhongTroTrucTuyen-sub000/internal/models"
)

const (
	areaReviews = "reviews"
	areaReports = "reports"
)

func (c *Client) RoomReviews(ctx context.Context, roomID string) ([]models.Review, error) {
	var reviews []models.Review
	if err := c.doGet(ctx, areaReviews, "/reviews/"+url.PathEscape(roomID), &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (c *Client) CreateReview(ctx context.Context, review *models.Review) (*models.Review, error) {
	var created models.Review
	if err := c.doPost(ctx, areaReviews, "/reviews/"+url.PathEscape(review.RoomID), review, &created); err != nil {
		return nil, err
	}
	c.invalidate(ctx, "/reviews/"+url.PathEscape(review.RoomID))
	return &created, nil
}

func (c *Client) CreateReport(ctx context.Context, report *models.Report) (*models.Report, error) {
	var created models.Report
	if err := c.doPost(ctx, areaReports, "/reports", report, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) RoomReports(ctx context.Context, roomID string) ([]models.Report, error) {
	var reports []models.Report
	if err := c.doGet(ctx, areaReports, "/reports/room/"+url.PathEscape(roomID), &reports); err != nil {
		return nil, err
	}
	return reports, nil
}
