package repo

import (
	"context"

	"gorm.io/gorm"

	"mini-mall-api/internal/domain"
)

type StatsRepo struct{ db *gorm.DB }

func NewStatsRepo(db *gorm.DB) *StatsRepo { return &StatsRepo{db: db} }

func (r *StatsRepo) Dashboard(ctx context.Context) (*domain.DashboardStats, error) {
	db := r.db.WithContext(ctx)
	var s domain.DashboardStats

	counts := []struct {
		dst   *int64
		model any
		cond  string
	}{
		{&s.TotalUsers, &domain.User{}, ""},
		{&s.ActiveUsers, &domain.User{}, "is_active = true"},
		{&s.TotalProducts, &domain.Product{}, ""},
		{&s.ActiveProducts, &domain.Product{}, "is_active = true"},
		{&s.TotalOrders, &domain.Order{}, ""},
		{&s.TotalPosts, &domain.Post{}, ""},
		{&s.PublishedPosts, &domain.Post{}, "is_published = true"},
	}
	for _, c := range counts {
		q := db.Model(c.model)
		if c.cond != "" {
			q = q.Where(c.cond)
		}
		if err := q.Count(c.dst).Error; err != nil {
			return nil, err
		}
	}
	return &s, nil
}
