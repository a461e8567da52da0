package handlers

import (
	"context"
	"net/http"

	"mathgame-service/internal/service"
	"mathgame-service/internal/utils"

	"github.com/gin-gonic/gin"
)

type LeaderboardHandler struct {
	Service *service.LeaderboardService
}

func NewLeaderboardHandler(s *service.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{Service: s}
}

func (h *LeaderboardHandler) Global(c *gin.Context) {
	entries, err := h.Service.Global(context.Background(), c.Query("grade"))
	if err != nil {
		utils.InternalErrorResponse(c, "Error fetching global leaderboard", err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *LeaderboardHandler) School(c *gin.Context) {
	schoolID := c.Query("schoolId")
	grade := c.Query("grade")
	if schoolID == "" || grade == "" {
		utils.BadRequestResponse(c, "schoolId and grade are required")
		return
	}

	entries, err := h.Service.School(context.Background(), schoolID, grade)
	if err != nil {
		utils.InternalErrorResponse(c, "Error fetching school leaderboard", err)
		return
	}
	c.JSON(http.StatusOK, entries)
}
