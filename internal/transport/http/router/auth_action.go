package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mini-mall-api/internal/domain"
	"mini-mall-api/internal/service"
	"mini-mall-api/internal/transport/http/ez"
)

func mountAuthActions(api, authed *gin.RouterGroup, svcs *service.Services) {
	ezPublic := ez.New(api)
	ezAuth := ez.New(authed)

	type loginIn struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	type loginOut struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	ez.RegisterAction(ezPublic, ez.Action[loginIn, loginOut]{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *loginIn) (loginOut, error) {
			tok, _, err := svcs.Auth.Login(c.Request.Context(), in.Username, in.Password)
			if err != nil {
				return loginOut{}, err
			}
			return loginOut{AccessToken: tok, TokenType: "bearer"}, nil
		},
	})

	// 持令牌回显当前用户，用于前端校验令牌是否仍有效
	ez.RegisterAction(ezAuth, ez.Action[struct{}, *domain.User]{
		Method: http.MethodPost,
		Path:   "/auth/test-token",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (*domain.User, error) {
			return currentUser(c, svcs)
		},
	})
}
