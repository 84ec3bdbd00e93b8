package context

import (
	"errors"
	"net/http"

	"Savora/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	CtxUserID = "user_id"
)

type HandlerFunc func(*gin.Context) error

// Wrap 统一出口：业务 handler 返回 error，这里按错误分类写状态码和 detail
func Wrap(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// 如果已经写过响应，直接返回
			if c.Writer.Written() {
				return
			}
			var be *response.BizError
			if errors.As(err, &be) {
				c.JSON(be.Kind.HTTPStatus(), response.Detail{Detail: be.Msg})
				return
			}
			c.JSON(http.StatusInternalServerError, response.Detail{Detail: err.Error()})
		}
	}
}

func GetUserID(c *gin.Context) (uint64, error) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0, errors.New("user_id not set")
	}

	uid, ok := v.(uint64)
	if !ok {
		return 0, errors.New("user_id has wrong type")
	}

	return uid, nil
}
