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

type SchoolHandler struct {
	Service *service.SchoolService
}

func NewSchoolHandler(s *service.SchoolService) *SchoolHandler {
	return &SchoolHandler{Service: s}
}

func (h *SchoolHandler) List(c *gin.Context) {
	schools, err := h.Service.List(context.Background())
	if err != nil {
		utils.InternalErrorResponse(c, "Error fetching schools", err)
		return
	}
	c.JSON(http.StatusOK, schools)
}

func (h *SchoolHandler) Grades(c *gin.Context) {
	school, err := h.Service.Get(context.Background(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrSchoolNotFound) {
			utils.NotFoundResponse(c, "School not found")
			return
		}
		utils.InternalErrorResponse(c, "Error fetching school", err)
		return
	}
	c.JSON(http.StatusOK, school.Grades)
}

type assignStudentRequest struct {
	SchoolID string `json:"schoolId"`
	Grade    string `json:"grade"`
}

func (h *SchoolHandler) AssignStudent(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req assignStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.SchoolID == "" || req.Grade == "" {
		utils.BadRequestResponse(c, "schoolId and grade are required")
		return
	}

	updated, err := h.Service.AssignStudent(context.Background(), user.ID, req.SchoolID, req.Grade)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSchoolNotFound):
			utils.NotFoundResponse(c, "School not found")
		case errors.Is(err, service.ErrGradeNotOffered):
			utils.BadRequestResponse(c, "Grade not found in this school")
		default:
			utils.InternalErrorResponse(c, "Error assigning student", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Student assigned", "user": updated})
}
