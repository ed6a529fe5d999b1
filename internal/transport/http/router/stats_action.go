package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mini-mall-api/internal/domain"
	"mini-mall-api/internal/service"
	"mini-mall-api/internal/transport/http/ez"
)

func mountStatsActions(api *gin.RouterGroup, svcs *service.Services) {
	ezPublic := ez.New(api)

	ez.RegisterAction(ezPublic, ez.Action[struct{}, *domain.DashboardStats]{
		Method: http.MethodGet,
		Path:   "/stats/dashboard",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (*domain.DashboardStats, error) {
			return svcs.Stats.Dashboard(c.Request.Context())
		},
	})
}
