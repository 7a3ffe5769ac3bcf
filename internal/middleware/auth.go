package middleware

import (
	"strings"

	"gamification_backend/internal/config"
	"gamification_backend/internal/model"
	"gamification_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the Bearer token. The config is fetched per
// request so a reloaded JWT secret takes effect without a restart.
func AuthMiddleware(current func() *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, current().JWT.Secret)
		if err != nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("user", claims)
		c.Next()
	}
}

func RoleMiddleware(roles ...model.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := util.GetUserFromContext(c)
		if user == nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		hasRole := false
		for _, role := range roles {
			// admins pass every role check
			if user.Role == model.RoleAdmin || user.Role == role {
				hasRole = true
				break
			}
		}

		if !hasRole {
			util.Forbidden(c, util.ErrPermissionDenied.Error())
			c.Abort()
			return
		}
		c.Next()
	}
}
