package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func RequireAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims, ok := claimsFromContext(ctx)
		if !ok {
			abortWithMessage(ctx, http.StatusUnauthorized, msgNoTokenClaims)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != "admin" {
			abortWithMessage(ctx, http.StatusForbidden, msgAdminRequired)
			return
		}

		ctx.Next()
	}
}
