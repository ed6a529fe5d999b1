package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mini-mall-api/internal/domain"
	"mini-mall-api/internal/service"
	"mini-mall-api/internal/transport/http/ez"
)

func mountProductActions(api, admin *gin.RouterGroup, svcs *service.Services) {
	ezPublic := ez.New(api)
	ezAdmin := ez.New(admin)

	type listProductsIn struct {
		PageQ
		CategoryID *uint  `form:"categoryId"`
		Search     string `form:"search"`
		All        bool   `form:"all"`
	}
	ez.RegisterAction(ezPublic, ez.Action[listProductsIn, listOut[domain.Product]]{
		Method: http.MethodGet,
		Path:   "/products",
		Binder: ez.BindQuery,
		Handler: func(c *gin.Context, in *listProductsIn) (listOut[domain.Product], error) {
			in.clamp()
			f := domain.ProductFilter{
				CategoryID: in.CategoryID,
				Search:     in.Search,
				ActiveOnly: !in.All,
			}
			items, total, err := svcs.Products.List(c.Request.Context(), f, in.Skip, in.Limit)
			if err != nil {
				return listOut[domain.Product]{}, err
			}
			return listOut[domain.Product]{Items: items, Total: total}, nil
		},
	})

	ez.RegisterAction(ezPublic, ez.Action[struct{}, *domain.Product]{
		Method: http.MethodGet,
		Path:   "/products/:id",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (*domain.Product, error) {
			id, err := idParam(c)
			if err != nil {
				return nil, err
			}
			return svcs.Products.Get(c.Request.Context(), id)
		},
	})

	ez.RegisterAction(ezAdmin, ez.Action[service.ProductInput, *domain.Product]{
		Method: http.MethodPost,
		Path:   "/products",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *service.ProductInput) (*domain.Product, error) {
			return svcs.Products.Create(c.Request.Context(), *in)
		},
	})

	ez.RegisterAction(ezAdmin, ez.Action[service.ProductInput, *domain.Product]{
		Method: http.MethodPut,
		Path:   "/products/:id",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *service.ProductInput) (*domain.Product, error) {
			id, err := idParam(c)
			if err != nil {
				return nil, err
			}
			return svcs.Products.Update(c.Request.Context(), id, *in)
		},
	})

	ez.RegisterAction(ezAdmin, ez.Action[struct{}, gin.H]{
		Method: http.MethodDelete,
		Path:   "/products/:id",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (gin.H, error) {
			id, err := idParam(c)
			if err != nil {
				return nil, err
			}
			if err := svcs.Products.Delete(c.Request.Context(), id); err != nil {
				return nil, err
			}
			return gin.H{"deleted": id}, nil
		},
	})
}
