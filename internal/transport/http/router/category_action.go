package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mini-mall-api/internal/domain"
	"mini-mall-api/internal/service"
	"mini-mall-api/internal/transport/http/ez"
)

func mountCategoryActions(api, admin *gin.RouterGroup, svcs *service.Services) {
	ezPublic := ez.New(api)
	ezAdmin := ez.New(admin)

	type listCategoriesIn struct {
		ParentID *uint `form:"parentId"`
		All      bool  `form:"all"`
	}
	ez.RegisterAction(ezPublic, ez.Action[listCategoriesIn, []domain.Category]{
		Method: http.MethodGet,
		Path:   "/categories",
		Binder: ez.BindQuery,
		Handler: func(c *gin.Context, in *listCategoriesIn) ([]domain.Category, error) {
			return svcs.Categories.List(c.Request.Context(), in.ParentID, !in.All)
		},
	})

	ez.RegisterAction(ezPublic, ez.Action[struct{}, *domain.Category]{
		Method: http.MethodGet,
		Path:   "/categories/:id",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (*domain.Category, error) {
			id, err := idParam(c)
			if err != nil {
				return nil, err
			}
			return svcs.Categories.Get(c.Request.Context(), id)
		},
	})

	ez.RegisterAction(ezAdmin, ez.Action[service.CategoryInput, *domain.Category]{
		Method: http.MethodPost,
		Path:   "/categories",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *service.CategoryInput) (*domain.Category, error) {
			return svcs.Categories.Create(c.Request.Context(), *in)
		},
	})

	ez.RegisterAction(ezAdmin, ez.Action[service.CategoryInput, *domain.Category]{
		Method: http.MethodPut,
		Path:   "/categories/:id",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *service.CategoryInput) (*domain.Category, error) {
			id, err := idParam(c)
			if err != nil {
				return nil, err
			}
			return svcs.Categories.Update(c.Request.Context(), id, *in)
		},
	})

	ez.RegisterAction(ezAdmin, ez.Action[struct{}, gin.H]{
		Method: http.MethodDelete,
		Path:   "/categories/:id",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (gin.H, error) {
			id, err := idParam(c)
			if err != nil {
				return nil, err
			}
			if err := svcs.Categories.Delete(c.Request.Context(), id); err != nil {
				return nil, err
			}
			return gin.H{"deleted": id}, nil
		},
	})
}
