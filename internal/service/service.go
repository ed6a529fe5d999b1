package service

import (
	"time"

	"go.uber.org/zap"

	"mini-mall-api/internal/core/auth"
	"mini-mall-api/internal/core/cache"
	"mini-mall-api/internal/repo"
)

// Services 聚合全部业务服务
type Services struct {
	Auth       *AuthService
	Users      *UserService
	Products   *ProductService
	Categories *CategoryService
	Orders     *OrderService
	Posts      *PostService
	Stats      *StatsService
}

type Options struct {
	JWTer    *auth.JWTer
	Cache    *cache.Cache // 可为 nil
	StatsTTL time.Duration
}

func New(r *repo.Repository, opt Options, log *zap.Logger) *Services {
	return &Services{
		Auth:       NewAuthService(r.Users, opt.JWTer, log),
		Users:      NewUserService(r.Users, log),
		Products:   NewProductService(r.Products, r.Categories, log),
		Categories: NewCategoryService(r.Categories, log),
		Orders:     NewOrderService(r.Orders, r.Products, log),
		Posts:      NewPostService(r.Posts, log),
		Stats:      NewStatsService(r.Stats, opt.Cache, opt.StatsTTL, log),
	}
}
