package router

import (
	"net/http"

	"github.com/Aditya122221/ElevateAI-sub001/internal/auth"
	"github.com/Aditya122221/ElevateAI-sub001/internal/config"
	"github.com/Aditya122221/ElevateAI-sub001/internal/models"
	"github.com/Aditya122221/ElevateAI-sub001/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserLoaderMiddleware parses the bearer token, if any, and loads the
// user into the context. Invalid or stale tokens are treated as guest
// requests; protected routes reject them downstream.
func UserLoaderMiddleware(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := auth.FromAuthHeader(c.GetHeader("Authorization"))
		if !ok {
			c.Next()
			return
		}

		claims, err := auth.ParseToken(token, config.Conf.Auth.JWTSecret)
		if err != nil {
			c.Next()
			return
		}

		user, err := repository.GetUserByID(c.Request.Context(), claims.UserID)
		if err != nil {
			// Token refers to a deleted user; treat as guest.
			log.Debug("Token for unknown user", zap.Uint("userID", claims.UserID))
			c.Next()
			return
		}

		c.Set("user", user)
		c.Next()
	}
}

// AuthRequired checks that a valid user was loaded into the context.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get("user"); !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			return
		}
		c.Next()
	}
}

// AdminRequired gates admin routes on the stored flag, not the token claim.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get("user")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			return
		}
		user, ok := value.(*models.User)
		if !ok || !user.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Admin access required"})
			return
		}
		c.Next()
	}
}
