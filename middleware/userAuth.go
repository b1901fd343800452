package middleware

import (
	"net/http"
	"strings"

	"serenemind/services/user"
	"serenemind/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthUserMiddleware validates the Bearer token and checks it against the
// user's stored token hash, so revoked tokens stop working immediately.
func JWTAuthUserMiddleware(userSvc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		valid, err := userSvc.VerifyUserToken(userID, tokenString)
		if err != nil || !valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Session expired, please sign in again",
				"code":  1,
			})
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}

// GetUserID returns the authenticated user ID set by the middleware.
func GetUserID(c *gin.Context) string {
	if v, ok := c.Get("userID"); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
