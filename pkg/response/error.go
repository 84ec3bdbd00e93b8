package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Kind 业务错误分类，统一在出口处映射成 HTTP 状态码
type Kind int

const (
	KindInternal Kind = iota
	KindAuth
	KindValidation
	KindNotFound
	KindForbidden
	KindUpstream
)

func (k Kind) HTTPStatus() int {
	switch k {
	case KindAuth:
		return http.StatusUnauthorized
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindForbidden:
		return http.StatusForbidden
	case KindUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

type BizError struct {
	Kind Kind
	Msg  string
}

func (e *BizError) Error() string {
	return e.Msg
}

func NewError(kind Kind, msg string) *BizError {
	return &BizError{
		Kind: kind,
		Msg:  msg,
	}
}

// Detail 错误响应体，和对端约定为 {"detail": ...}
type Detail struct {
	Detail string `json:"detail"`
}

func Abort(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, Detail{Detail: msg})
}
