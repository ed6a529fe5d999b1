package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mini-mall-api/internal/domain"
	"mini-mall-api/internal/service"
	"mini-mall-api/internal/transport/http/ez"
)

func mountUserActions(api, authed *gin.RouterGroup, svcs *service.Services) {
	ezPublic := ez.New(api)
	ezAuth := ez.New(authed)

	// 注册是公开接口
	ez.RegisterAction(ezPublic, ez.Action[service.RegisterInput, *domain.User]{
		Method: http.MethodPost,
		Path:   "/users",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *service.RegisterInput) (*domain.User, error) {
			return svcs.Auth.Register(c.Request.Context(), *in)
		},
	})

	ez.RegisterAction(ezAuth, ez.Action[service.UpdateUserInput, *domain.User]{
		Method: http.MethodPut,
		Path:   "/users/me",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *service.UpdateUserInput) (*domain.User, error) {
			me, err := currentUser(c, svcs)
			if err != nil {
				return nil, err
			}
			return svcs.Users.UpdateMe(c.Request.Context(), me, *in)
		},
	})

	type listUsersIn struct {
		PageQ
		Q string `form:"q"`
	}
	ez.RegisterAction(ezAuth, ez.Action[listUsersIn, listOut[domain.User]]{
		Method: http.MethodGet,
		Path:   "/users",
		Binder: ez.BindQuery,
		Handler: func(c *gin.Context, in *listUsersIn) (listOut[domain.User], error) {
			me, err := currentUser(c, svcs)
			if err != nil {
				return listOut[domain.User]{}, err
			}
			if !me.IsAdmin {
				return listOut[domain.User]{}, ez.Forbidden("admin only")
			}
			in.clamp()
			items, total, err := svcs.Users.List(c.Request.Context(), in.Q, in.Skip, in.Limit)
			if err != nil {
				return listOut[domain.User]{}, err
			}
			return listOut[domain.User]{Items: items, Total: total}, nil
		},
	})

	// GET /users/me 复用同一条路由，gin 不允许 me 和 :id 并存。
	// 普通用户只能查自己，admin 可查任意用户
	ez.RegisterAction(ezAuth, ez.Action[struct{}, *domain.User]{
		Method: http.MethodGet,
		Path:   "/users/:id",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (*domain.User, error) {
			me, err := currentUser(c, svcs)
			if err != nil {
				return nil, err
			}
			if c.Param("id") == "me" {
				return me, nil
			}
			id, err := idParam(c)
			if err != nil {
				return nil, err
			}
			if me.ID != id && !me.IsAdmin {
				return nil, ez.Forbidden("not allowed")
			}
			return svcs.Users.Get(c.Request.Context(), id)
		},
	})
}
