package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mini-mall-api/internal/domain"
	"mini-mall-api/internal/service"
	"mini-mall-api/internal/transport/http/ez"
)

func mountOrderActions(authed, admin *gin.RouterGroup, svcs *service.Services) {
	ezAuth := ez.New(authed)
	ezAdmin := ez.New(admin)

	type listOrdersIn struct {
		PageQ
		Status string `form:"status"`
	}
	ez.RegisterAction(ezAuth, ez.Action[listOrdersIn, listOut[domain.Order]]{
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

	ez.RegisterAction(ezAuth, ez.Action[service.CreateOrderInput, *domain.Order]{
		Method: http.MethodPost,
		Path:   "/orders",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *service.CreateOrderInput) (*domain.Order, error) {
			me, err := currentUser(c, svcs)
			if err != nil {
				return nil, err
			}
			return svcs.Orders.Create(c.Request.Context(), me.ID, *in)
		},
	})

	ez.RegisterAction(ezAuth, ez.Action[struct{}, *domain.Order]{
		Method: http.MethodGet,
		Path:   "/orders/:id",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (*domain.Order, error) {
			id, err := idParam(c)
			if err != nil {
				return nil, err
			}
			me, err := currentUser(c, svcs)
			if err != nil {
				return nil, err
			}
			return svcs.Orders.Get(c.Request.Context(), me, id)
		},
	})

	ez.RegisterAction(ezAuth, ez.Action[service.UpdateOrderInput, *domain.Order]{
		Method: http.MethodPut,
		Path:   "/orders/:id",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *service.UpdateOrderInput) (*domain.Order, error) {
			id, err := idParam(c)
			if err != nil {
				return nil, err
			}
			me, err := currentUser(c, svcs)
			if err != nil {
				return nil, err
			}
			return svcs.Orders.Update(c.Request.Context(), me, id, *in)
		},
	})

	// 删除订单仅限 admin
	ez.RegisterAction(ezAdmin, ez.Action[struct{}, gin.H]{
		Method: http.MethodDelete,
		Path:   "/orders/:id",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (gin.H, error) {
			id, err := idParam(c)
			if err != nil {
				return nil, err
			}
			me, err := currentUser(c, svcs)
			if err != nil {
				return nil, err
			}
			if err := svcs.Orders.Delete(c.Request.Context(), me, id); err != nil {
				return nil, err
			}
			return gin.H{"deleted": id}, nil
		},
	})
}
