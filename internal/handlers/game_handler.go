package handlers

import (
	"context"
	"errors"
	"net/http"

	"mathgame-service/internal/middleware"
	"mathgame-service/internal/service"
	"mathgame-service/internal/utils"

	"github.com/gin-gonic/gin"
)

type GameHandler struct {
	Service *service.GameService
}

func NewGameHandler(s *service.GameService) *GameHandler {
	return &GameHandler{Service: s}
}

type submitRequest struct {
	Question   string  `json:"question"`
	UserAnswer int     `json:"userAnswer"`
	TimeTaken  float64 `json:"timeTaken"`
}

func (h *GameHandler) GetQuestion(c *gin.Context) {
	user := middleware.CurrentUser(c)
	question := h.Service.NextQuestion(user)
	questionsServed.Inc()
	c.JSON(http.StatusOK, question)
}

func (h *GameHandler) SubmitAnswer(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}
	if req.Question == "" {
		utils.BadRequestResponse(c, "Question is required")
		return
	}
	if req.TimeTaken < 0 {
		utils.BadRequestResponse(c, "timeTaken must be non-negative")
		return
	}

	result, err := h.Service.SubmitAnswer(context.Background(), user.ID, req.Question, req.UserAnswer, req.TimeTaken)
	if err != nil {
		if errors.Is(err, service.ErrMalformedQuestion) {
			utils.BadRequestResponse(c, "Malformed question")
			return
		}
		utils.InternalErrorResponse(c, "Error submitting answer", err)
		return
	}

	answersSubmitted.WithLabelValues(boolLabel(result.IsCorrect)).Inc()
	answerTime.Observe(req.TimeTaken)

	c.JSON(http.StatusOK, gin.H{
		"message":        "Answer submitted",
		"isCorrect":      result.IsCorrect,
		"correctAnswer":  result.CorrectAnswer,
		"totalCorrect":   result.TotalCorrect,
		"totalQuestions": result.TotalQuestions,
		"averageTime":    result.AverageTime,
		"currency":       result.Currency,
	})
}

func (h *GameHandler) Skip(c *gin.Context) {
	user := middleware.CurrentUser(c)

	result, err := h.Service.Skip(context.Background(), user.ID)
	if err != nil {
		utils.InternalErrorResponse(c, "Error skipping question", err)
		return
	}

	questionsSkipped.Inc()
	c.JSON(http.StatusOK, result)
}

func boolLabel(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
