package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mini-mall-api/internal/domain"
	"mini-mall-api/internal/service"
	"mini-mall-api/internal/transport/http/ez"
)

func mountPostActions(api, authed *gin.RouterGroup, svcs *service.Services) {
	ezPublic := ez.New(api)
	ezAuth := ez.New(authed)

	// 公开列表只含已发布文章
	ez.RegisterAction(ezPublic, ez.Action[PageQ, listOut[domain.Post]]{
		Method: http.MethodGet,
		Path:   "/posts",
		Binder: ez.BindQuery,
		Handler: func(c *gin.Context, in *PageQ) (listOut[domain.Post], error) {
			in.clamp()
			f := domain.PostFilter{PublishedOnly: true}
			items, total, err := svcs.Posts.List(c.Request.Context(), f, in.Skip, in.Limit)
			if err != nil {
				return listOut[domain.Post]{}, err
			}
			return listOut[domain.Post]{Items: items, Total: total}, nil
		},
	})

	// 当前用户自己的文章，包含未发布的。
	// 路径避开 /posts/:id，gin 的路由树不接受静态段和参数段并存
	ez.RegisterAction(ezAuth, ez.Action[PageQ, listOut[domain.Post]]{
		Method: http.MethodGet,
		Path:   "/my/posts",
		Binder: ez.BindQuery,
		Handler: func(c *gin.Context, in *PageQ) (listOut[domain.Post], error) {
			me, err := currentUser(c, svcs)
			if err != nil {
				return listOut[domain.Post]{}, err
			}
			in.clamp()
			f := domain.PostFilter{AuthorID: me.ID}
			items, total, err := svcs.Posts.List(c.Request.Context(), f, in.Skip, in.Limit)
			if err != nil {
				return listOut[domain.Post]{}, err
			}
			return listOut[domain.Post]{Items: items, Total: total}, nil
		},
	})

	ez.RegisterAction(ezPublic, ez.Action[struct{}, *domain.Post]{
		Method: http.MethodGet,
		Path:   "/posts/:id",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (*domain.Post, error) {
			id, err := idParam(c)
			if err != nil {
				return nil, err
			}
			return svcs.Posts.Get(c.Request.Context(), id)
		},
	})

	ez.RegisterAction(ezAuth, ez.Action[service.PostInput, *domain.Post]{
		Method: http.MethodPost,
		Path:   "/posts",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *service.PostInput) (*domain.Post, error) {
			me, err := currentUser(c, svcs)
			if err != nil {
				return nil, err
			}
			return svcs.Posts.Create(c.Request.Context(), me.ID, *in)
		},
	})

	ez.RegisterAction(ezAuth, ez.Action[service.PostInput, *domain.Post]{
		Method: http.MethodPut,
		Path:   "/posts/:id",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *service.PostInput) (*domain.Post, error) {
			id, err := idParam(c)
			if err != nil {
				return nil, err
			}
			me, err := currentUser(c, svcs)
			if err != nil {
				return nil, err
			}
			return svcs.Posts.Update(c.Request.Context(), me, id, *in)
		},
	})

	ez.RegisterAction(ezAuth, ez.Action[struct{}, gin.H]{
		Method: http.MethodDelete,
		Path:   "/posts/:id",
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
			if err := svcs.Posts.Delete(c.Request.Context(), me, id); err != nil {
				return nil, err
			}
			return gin.H{"deleted": id}, nil
		},
	})
}
