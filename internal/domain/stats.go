package domain

import "context"

type DashboardStats struct {
	TotalUsers     int64 `json:"totalUsers"`
	ActiveUsers    int64 `json:"activeUsers"`
	TotalProducts  int64 `json:"totalProducts"`
	ActiveProducts int64 `json:"activeProducts"`
	TotalOrders    int64 `json:"totalOrders"`
	TotalPosts     int64 `json:"totalPosts"`
	PublishedPosts int64 `json:"publishedPosts"`
}

type StatsRepository interface {
	Dashboard(ctx context.Context) (*DashboardStats, error)
}
