package router

import (
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mini-mall-api/internal/core/auth"
	"mini-mall-api/internal/service"
	mdw "mini-mall-api/internal/transport/http/middleware"
)

// NewAdminEngine 运营后台：全部路由要求 admin 角色，
// 访问日志走 ginzap，限流比对外接口更严
func NewAdminEngine(l *zap.Logger, svcs *service.Services, jwter *auth.JWTer) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		ginzap.Ginzap(l, time.RFC3339, true),
		ginzap.RecoveryWithZap(l, true),
		mdw.RateLimitPerIP(20, 40),
	)

	g := r.Group("/admin/v1")
	g.Use(mdw.AuthJWT(jwter, "admin"))

	mountAdminActions(g, svcs)

	return r
}
