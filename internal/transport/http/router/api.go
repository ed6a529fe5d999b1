package router

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"mini-mall-api/internal/core/auth"
	"mini-mall-api/internal/domain"
	"mini-mall-api/internal/service"
	"mini-mall-api/internal/transport/http/ez"
	mdw "mini-mall-api/internal/transport/http/middleware"
)

func NewAPIEngine(l *zap.Logger, svcs *service.Services, jwter *auth.JWTer, corsOrigins []string) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(16<<20),
		mdw.Timeout(10*time.Second),
		mdw.SimpleRecovery(),
		mdw.Metrics(),
		mdw.AccessLog(l),
		corsMiddleware(corsOrigins),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")

	// 鉴权分组：登录即可；admin 分组额外要求 admin 角色
	authed := api.Group("")
	authed.Use(mdw.AuthJWT(jwter, ""))
	admin := api.Group("")
	admin.Use(mdw.AuthJWT(jwter, "admin"))

	mountAuthActions(api, authed, svcs)
	mountUserActions(api, authed, svcs)
	mountProductActions(api, admin, svcs)
	mountCategoryActions(api, admin, svcs)
	mountOrderActions(authed, admin, svcs)
	mountPostActions(api, authed, svcs)
	mountStatsActions(api, svcs)

	return r
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
	cfg.AllowAllOrigins = len(origins) == 0
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
		}
	}
	if !cfg.AllowAllOrigins {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}

// currentUser 把鉴权分组写入的 claims 换成激活用户
func currentUser(c *gin.Context, svcs *service.Services) (*domain.User, error) {
	claims := mdw.ClaimsFrom(c)
	if claims == nil {
		return nil, ez.Unauthorized("unauthorized")
	}
	return svcs.Auth.Resolve(c.Request.Context(), claims)
}

// listOut 列表统一返回 items + 总数
type listOut[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
}

func idParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, ez.BadRequest("invalid id")
	}
	return uint(id), nil
}

// PageQ skip/limit 分页参数
type PageQ struct {
	Skip  int `form:"skip,default=0"`
	Limit int `form:"limit,default=100"`
}

func (q *PageQ) clamp() {
	if q.Skip < 0 {
		q.Skip = 0
	}
	if q.Limit <= 0 || q.Limit > 100 {
		q.Limit = 100
	}
}
