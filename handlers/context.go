package handlers

import (
	"net/http"

	"schedly/middleware"
	"schedly/models"

	"github.com/gin-gonic/gin"
)

// currentUser pulls the authenticated user the JWT middleware stored on the
// context. A missing entry means the route was wired without the middleware.
func currentUser(c *gin.Context) (models.User, bool) {
	val, exists := c.Get(middleware.ContextUserKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return models.User{}, false
	}
	authUser, ok := val.(models.User)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return models.User{}, false
	}
	return authUser, true
}
