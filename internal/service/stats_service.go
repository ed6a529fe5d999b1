package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"mini-mall-api/internal/core/cache"
	"mini-mall-api/internal/domain"
)

const dashboardCacheKey = "stats:dashboard"

type StatsService struct {
	stats domain.StatsRepository
	cache *cache.Cache // 可为 nil，未配置 redis 时直查
	ttl   time.Duration
	log   *zap.Logger
}

func NewStatsService(stats domain.StatsRepository, c *cache.Cache, ttl time.Duration, log *zap.Logger) *StatsService {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &StatsService{stats: stats, cache: c, ttl: ttl, log: log}
}

func (s *StatsService) Dashboard(ctx context.Context) (*domain.DashboardStats, error) {
	if s.cache == nil {
		return s.stats.Dashboard(ctx)
	}
	out, err := cache.GetOrLoadJSON(s.cache, ctx, dashboardCacheKey, s.ttl, func(ctx context.Context) (*domain.DashboardStats, error) {
		return s.stats.Dashboard(ctx)
	})
	if err != nil {
		// 缓存链路出问题退回直查
		s.log.Warn("dashboard cache failed, falling back", zap.Error(err))
		return s.stats.Dashboard(ctx)
	}
	return out, nil
}
