// Package dto defines the JSON shape of the dashboard endpoint.
package dto

import "loomspace_backend/internal/feature/dashboard/domain/entity"

// StatsRes is the body of GET /admin/dashboard. Revenue is a plain JSON number here,
// unlike the string-encoded prices elsewhere.
type StatsRes struct {
	TotalOrders   int64   `json:"totalOrders"`
	TotalProducts int64   `json:"totalProducts"`
	TotalRevenue  float64 `json:"totalRevenue"`
}

// NewStatsRes converts the dashboard stats.
func NewStatsRes(s *entity.Stats) StatsRes {
	return StatsRes{
		TotalOrders:   s.TotalOrders,
		TotalProducts: s.TotalProducts,
		TotalRevenue:  s.TotalRevenue.Round(2).InexactFloat64(),
	}
}
