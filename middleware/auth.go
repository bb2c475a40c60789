package middleware

import (
	"net/http"
	"strings"
	"time"

	"NoteFlow/pkg/context"
	"NoteFlow/pkg/jwt"
	"NoteFlow/pkg/response"

	"github.com/gin-gonic/gin"
)

// Auth 解析外部认证服务签发的访问令牌
// 身份缺失或无效一律 401
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Abort(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Abort(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		claims, err := jwt.ParseToken(secret, "access", parts[1])
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		// 快过期时带回新令牌
		if time.Until(claims.ExpiresAt.Time) < 20*time.Second {
			newToken, _ := jwt.GenerateToken(
				secret,
				claims.UserID,
				"access",
				60*time.Second,
			)
			c.Header("X-New-Access-Token", newToken)
		}
		c.Set(context.CtxUserID, claims.UserID)

		c.Next()
	}
}
