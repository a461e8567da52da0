package handlers

import (
	"net/http"

	"mathgame-service/internal/middleware"

	"github.com/gin-gonic/gin"
)

type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

func (h *UserHandler) Profile(c *gin.Context) {
	user := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, gin.H{
		"name":      user.Username,
		"grade":     user.Grade,
		"schoolId":  user.SchoolID,
		"role":      user.Role,
		"currency":  user.Currency,
		"gameStats": user.GameStats,
		"avatar":    user.Avatar,
	})
}
