package handlers

import (
	"github.com/Aditya122221/ElevateAI-sub001/internal/models"

	"github.com/gin-gonic/gin"
)

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// currentUser returns the authenticated user loaded by the router middleware.
func currentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get("user")
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}
