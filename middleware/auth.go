package middleware

import (
	"net/http"
	"strings"

	"Savora/pkg/context"
	"Savora/pkg/jwt"
	"Savora/pkg/response"

	"github.com/gin-gonic/gin"
)

// Auth 校验 Bearer 令牌并把 user_id 放进请求上下文。
// 任何失败都在进 store / oracle 之前以 401 短路
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Abort(c, http.StatusUnauthorized, "Not authenticated")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Abort(c, http.StatusUnauthorized, "Not authenticated")
			return
		}

		claims, err := jwt.ParseToken(secret, parts[1])
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, err.Error())
			return
		}

		c.Set(context.CtxUserID, claims.UserID)

		c.Next()
	}
}
