package handlers

import (
	"context"
	"errors"
	"net/http"

	"mathgame-service/internal/service"
	"mathgame-service/internal/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	Service *service.AuthService
}

func NewAuthHandler(s *service.AuthService) *AuthHandler {
	return &AuthHandler{Service: s}
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Grade    string `json:"grade"`
	SchoolID string `json:"schoolId"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" || req.Grade == "" || req.SchoolID == "" {
		utils.BadRequestResponse(c, "All fields are required")
		return
	}

	user, err := h.Service.Register(context.Background(), req.Username, req.Password, req.Grade, req.SchoolID)
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			utils.ErrorResponse(c, http.StatusConflict, "User already exists", nil)
			return
		}
		utils.InternalErrorResponse(c, "Registration failed", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User created", "userId": user.ID})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	token, user, err := h.Service.Login(context.Background(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserLocked):
			loginAttempts.WithLabelValues("locked").Inc()
			utils.ErrorResponse(c, http.StatusTooManyRequests, "Too many failed attempts, try again later", nil)
		case errors.Is(err, service.ErrInvalidCredentials):
			loginAttempts.WithLabelValues("failure").Inc()
			utils.UnauthorizedResponse(c, "Invalid credentials", nil)
		default:
			loginAttempts.WithLabelValues("error").Inc()
			utils.InternalErrorResponse(c, "Login failed", err)
		}
		return
	}

	loginAttempts.WithLabelValues("success").Inc()
	c.JSON(http.StatusOK, gin.H{"token": token, "userId": user.ID})
}
