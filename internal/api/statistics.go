package api

import (
	"context"
	"net/url"
	"time"

	"github.com/bac-2005/HeThongPhongTroTrucTuyen-sub000/internal/models"
)

const areaStatistics = "statistics"

// statsPath builds the statistics query. Zero times are omitted so the
// backend applies its default window.
func statsPath(scope string, from, to time.Time) string {
	query := url.Values{}
	if !from.IsZero() {
		query.Set("from", from.Format("2006-01-02"))
	}
	if !to.IsZero() {
		query.Set("to", to.Format("2006-01-02"))
	}

	path := "/statistics/" + scope
	if len(query) == 0 {
		return path
	}
	return path + "?" + query.Encode()
}

// AdminStatistics fetches platform-wide KPIs for a date range. Heavy
// aggregation happens server-side; the caller only derives ratios.
func (c *Client) AdminStatistics(ctx context.Context, from, to time.Time) (*models.Statistics, error) {
	var stats models.Statistics
	if err := c.doGet(ctx, areaStatistics, statsPath("admin", from, to), &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// HostStatistics fetches KPIs scoped to the caller's rooms.
func (c *Client) HostStatistics(ctx context.Context, from, to time.Time) (*models.Statistics, error) {
	var stats models.Statistics
	if err := c.doGet(ctx, areaStatistics, statsPath("host", from, to), &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
