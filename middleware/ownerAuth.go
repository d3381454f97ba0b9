package middleware

import (
	"net/http"
	"strings"

	"shramic/utils"

	"github.com/gin-gonic/gin"
)

// OwnerAuthMiddleware guards the owner endpoints. It expects the bearer
// token minted after phone verification and places the owner's uid and
// phone number on the request context.
func OwnerAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}

		uid, phone, err := utils.ExtractIdentityFromToken(tokenString)
		if err != nil || uid == "" || phone == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}

		c.Set("ownerUID", uid)
		c.Set("ownerPhone", phone)
		c.Next()
	}
}
