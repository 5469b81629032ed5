package service

import (
	"context"
	"time"

	"github.com/bac-2005/HeThongPhongTroTrucTuyen-sub000/internal/domain"
	"github.com/bac-2005/HeThongPhongTroTrucTuyen-sub000/internal/models"

	"github.com/rs/zerolog"
)

// ChartPoint is one bar of the monthly revenue chart.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Dashboard bundles the raw statistics with the derived ratios the
// dashboard views display.
type Dashboard struct {
	Stats         *models.Statistics
	OccupancyRate float64
	ApprovalRate  float64
	RevenueChart  []ChartPoint
}

type StatsService struct {
	gateway domain.Gateway
	logger  *zerolog.Logger
}

func NewStatsService(gateway domain.Gateway, logger *zerolog.Logger) *StatsService {
	return &StatsService{gateway: gateway, logger: logger}
}

// AdminDashboard fetches system-wide statistics for the date range.
// A zero from/to means the backend's default window.
func (s *StatsService) AdminDashboard(ctx context.Context, from, to time.Time) (*Dashboard, error) {
	stats, err := s.gateway.AdminStatistics(ctx, from, to)
	if err != nil {
		s.logger.Error().Err(err).Msg("admin statistics fetch failed")
		return nil, err
	}
	return buildDashboard(stats), nil
}

// HostDashboard is the per-host variant scoped by the bearer token.
func (s *StatsService) HostDashboard(ctx context.Context, from, to time.Time) (*Dashboard, error) {
	stats, err := s.gateway.HostStatistics(ctx, from, to)
	if err != nil {
		s.logger.Error().Err(err).Msg("host statistics fetch failed")
		return nil, err
	}
	return buildDashboard(stats), nil
}

func buildDashboard(stats *models.Statistics) *Dashboard {
	chart := make([]ChartPoint, 0, len(stats.MonthlyRevenue))
	for _, m := range stats.MonthlyRevenue {
		chart = append(chart, ChartPoint{Label: m.Month, Value: m.Revenue})
	}
	return &Dashboard{
		Stats:         stats,
		OccupancyRate: stats.OccupancyRate(),
		ApprovalRate:  stats.ApprovalRate(),
		RevenueChart:  chart,
	}
}
