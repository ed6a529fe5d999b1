package ez

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"mini-mall-api/internal/domain"
	resp "mini-mall-api/internal/transport/http/response"
)

type EZ struct{ g *gin.RouterGroup }

func New(g *gin.RouterGroup) *EZ { return &EZ{g: g} }

type BindFunc func(c *gin.Context, in any) error

func BindJSON(c *gin.Context, in any) error  { return c.ShouldBindJSON(in) }
func BindQuery(c *gin.Context, in any) error { return c.ShouldBindQuery(in) }
func BindNone(*gin.Context, any) error       { return nil }

// Action 一个接口 = 入参类型 + 出参类型 + 处理函数。
// 绑定失败、业务错误到响应码的映射都在注册器里统一处理
type Action[In, Out any] struct {
	Method  string
	Path    string
	Binder  BindFunc
	Handler func(c *gin.Context, in *In) (Out, error)
}

func RegisterAction[In, Out any](e *EZ, a Action[In, Out]) {
	binder := a.Binder
	if binder == nil {
		binder = BindNone
	}
	e.g.Handle(a.Method, a.Path, func(c *gin.Context) {
		in := new(In)
		if err := binder(c, in); err != nil {
			c.JSON(http.StatusOK, resp.Error(resp.CodeBadRequest, err.Error()))
			return
		}
		out, err := a.Handler(c, in)
		if err != nil {
			c.JSON(http.StatusOK, fromError(err))
			return
		}
		c.JSON(http.StatusOK, resp.OK(out))
	})
}

type apiError struct {
	code int
	msg  string
	err  error
}

func (e *apiError) Error() string {
	if e.err != nil {
		return e.msg + ": " + e.err.Error()
	}
	return e.msg
}

func (e *apiError) Unwrap() error { return e.err }

func BadRequest(msg string) error          { return &apiError{code: resp.CodeBadRequest, msg: msg} }
func Unauthorized(msg string) error        { return &apiError{code: resp.CodeUnauthorized, msg: msg} }
func Forbidden(msg string) error           { return &apiError{code: resp.CodeForbidden, msg: msg} }
func NotFound(msg string) error            { return &apiError{code: resp.CodeNotFound, msg: msg} }
func Conflict(msg string) error            { return &apiError{code: resp.CodeConflict, msg: msg} }
func Internal(msg string, err error) error { return &apiError{code: resp.CodeServerError, msg: msg, err: err} }

// fromError 业务错误哨兵 → 响应码；未识别的一律按 500 处理
func fromError(err error) resp.Resp {
	var ae *apiError
	if errors.As(err, &ae) {
		return resp.Error(ae.code, ae.msg)
	}
	switch {
	case errors.Is(err, domain.ErrValidation):
		return resp.Error(resp.CodeBadRequest, err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		return resp.Error(resp.CodeUnauthorized, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		return resp.Error(resp.CodeForbidden, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		return resp.Error(resp.CodeNotFound, err.Error())
	case errors.Is(err, domain.ErrConflict):
		return resp.Error(resp.CodeConflict, err.Error())
	}
	return resp.Error(resp.CodeServerError, "internal error")
}
