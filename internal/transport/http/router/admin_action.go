package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mini-mall-api/internal/domain"
	"mini-mall-api/internal/service"
	"mini-mall-api/internal/transport/http/ez"
)

func mountAdminActions(g *gin.RouterGroup, svcs *service.Services) {
	e := ez.New(g)

	type listUsersIn struct {
		PageQ
		Q string `form:"q"`
	}
	ez.RegisterAction(e, ez.Action[listUsersIn, listOut[domain.User]]{
		Method: http.MethodGet,
		Path:   "/users",
		Binder: ez.BindQuery,
		Handler: func(c *gin.Context, in *listUsersIn) (listOut[domain.User], error) {
			in.clamp()
			items, total, err := svcs.Users.List(c.Request.Context(), in.Q, in.Skip, in.Limit)
			if err != nil {
				return listOut[domain.User]{}, err
			}
			return listOut[domain.User]{Items: items, Total: total}, nil
		},
	})

	setActive := func(active bool) func(c *gin.Context, _ *struct{}) (*domain.User, error) {
		return func(c *gin.Context, _ *struct{}) (*domain.User, error) {
			id, err := idParam(c)
			if err != nil {
				return nil, err
			}
			return svcs.Users.SetActive(c.Request.Context(), id, active)
		}
	}
	ez.RegisterAction(e, ez.Action[struct{}, *domain.User]{
		Method:  http.MethodPost,
		Path:    "/users/:id/activate",
		Binder:  ez.BindNone,
		Handler: setActive(true),
	})
	ez.RegisterAction(e, ez.Action[struct{}, *domain.User]{
		Method:  http.MethodPost,
		Path:    "/users/:id/deactivate",
		Binder:  ez.BindNone,
		Handler: setActive(false),
	})
	ez.RegisterAction(e, ez.Action[struct{}, *domain.User]{
		Method: http.MethodPost,
		Path:   "/users/:id/promote",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (*domain.User, error) {
			id, err := idParam(c)
			if err != nil {
				return nil, err
			}
			return svcs.Users.SetAdmin(c.Request.Context(), id, true)
		},
	})

	type listOrdersIn struct {
		PageQ
		Status string `form:"status"`
	}
	ez.RegisterAction(e, ez.Action[listOrdersIn, listOut[domain.Order]]{
		Method: http.MethodGet,
		Path:   "/orders",
		Binder: ez.BindQuery,
		Handler: func(c *gin.Context, in *listOrdersIn) (listOut[domain.Order], error) {
			me, err := currentUser(c, svcs)
			if err != nil {
				return listOut[domain.Order]{}, err
			}
			in.clamp()
			items, total, err := svcs.Orders.List(c.Request.Context(), me, domain.OrderStatus(in.Status), in.Skip, in.Limit)
			if err != nil {
				return listOut[domain.Order]{}, err
			}
			return listOut[domain.Order]{Items: items, Total: total}, nil
		},
	})

	type setStatusIn struct {
		Status domain.OrderStatus `json:"status" binding:"required"`
	}
	ez.RegisterAction(e, ez.Action[setStatusIn, *domain.Order]{
		Method: http.MethodPost,
		Path:   "/orders/:id/status",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *setStatusIn) (*domain.Order, error) {
			id, err := idParam(c)
			if err != nil {
				return nil, err
			}
			me, err := currentUser(c, svcs)
			if err != nil {
				return nil, err
			}
			return svcs.Orders.Update(c.Request.Context(), me, id, service.UpdateOrderInput{Status: &in.Status})
		},
	})

	ez.RegisterAction(e, ez.Action[struct{}, *domain.DashboardStats]{
		Method: http.MethodGet,
		Path:   "/dashboard",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (*domain.DashboardStats, error) {
			return svcs.Stats.Dashboard(c.Request.Context())
		},
	})
}
