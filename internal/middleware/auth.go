package middleware

import (
	"context"
	"net/http"

	"mathgame-service/internal/models"
	"mathgame-service/internal/repository"
	"mathgame-service/internal/utils"

	"github.com/gin-gonic/gin"
)

const userContextKey = "user"

// AuthRequired validates the bearer token and attaches the full user
// document to the request context.
func AuthRequired(userRepo *repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := utils.BearerToken(c)
		if token == "" {
			utils.UnauthorizedResponse(c, "No token provided", nil)
			c.Abort()
			return
		}

		claims, err := utils.ValidateJWT(token)
		if err != nil {
			utils.UnauthorizedResponse(c, "Unauthorized", err)
			c.Abort()
			return
		}

		user, err := userRepo.FindByID(context.Background(), claims.UserID)
		if err != nil {
			utils.UnauthorizedResponse(c, "Invalid token", nil)
			c.Abort()
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// AdminRequired gates admin routes on the user's role field.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || !user.IsAdmin() {
			c.JSON(http.StatusForbidden, gin.H{"message": "Admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user loaded by AuthRequired, or nil.
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(userContextKey)
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}
