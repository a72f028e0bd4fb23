package middlewares

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	msgMissingAuthHeader = "Missing or malformed authorization header"
	msgInvalidToken      = "Invalid or expired token"
	msgNoTokenClaims     = "Invalid token claims"
	msgAdminRequired     = "Admin access required"
)

func abortWithMessage(ctx *gin.Context, status int, message string) {
	ctx.AbortWithStatusJSON(status, gin.H{"message": message})
}

// claimsFromContext returns the claims a preceding RequireAuth stored.
func claimsFromContext(ctx *gin.Context) (jwt.MapClaims, bool) {
	userClaims, exists := ctx.Get("user")
	if !exists {
		return nil, false
	}
	claims, ok := userClaims.(jwt.MapClaims)
	return claims, ok
}

func RequireAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			abortWithMessage(ctx, http.StatusUnauthorized, msgMissingAuthHeader)
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})
		if err != nil || !token.Valid {
			abortWithMessage(ctx, http.StatusUnauthorized, msgInvalidToken)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abortWithMessage(ctx, http.StatusUnauthorized, msgNoTokenClaims)
			return
		}

		ctx.Set("user", claims)
		ctx.Next()
	}
}
