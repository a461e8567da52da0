package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"mathgame-service/internal/models"
	"mathgame-service/internal/service"
	"mathgame-service/internal/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler covers the school-management console. Routes are gated by
// the admin role middleware.
type AdminHandler struct {
	Service *service.SchoolService
}

func NewAdminHandler(s *service.SchoolService) *AdminHandler {
	return &AdminHandler{Service: s}
}

type createSchoolRequest struct {
	Name          string         `json:"name"`
	LicenseExpiry string         `json:"licenseExpiry"`
	Grades        []models.Grade `json:"grades"`
}

type renewRequest struct {
	LicenseExpiry string `json:"licenseExpiry"`
}

func (h *AdminHandler) ListSchools(c *gin.Context) {
	schools, err := h.Service.List(context.Background())
	if err != nil {
		utils.InternalErrorResponse(c, "Error fetching schools", err)
		return
	}
	c.JSON(http.StatusOK, schools)
}

func (h *AdminHandler) CreateSchool(c *gin.Context) {
	var req createSchoolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}
	if req.Name == "" || req.LicenseExpiry == "" || len(req.Grades) == 0 {
		utils.BadRequestResponse(c, "Invalid input. Required: name, licenseExpiry, and grades array")
		return
	}
	expiry, err := parseExpiry(req.LicenseExpiry)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid licenseExpiry date")
		return
	}

	school, err := h.Service.Create(context.Background(), req.Name, req.Grades, expiry)
	if err != nil {
		utils.InternalErrorResponse(c, "Error creating school", err)
		return
	}
	c.JSON(http.StatusCreated, school)
}

func (h *AdminHandler) RenewLicense(c *gin.Context) {
	var req renewRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.LicenseExpiry == "" {
		utils.BadRequestResponse(c, "License expiry date is required")
		return
	}
	expiry, err := parseExpiry(req.LicenseExpiry)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid licenseExpiry date")
		return
	}

	school, err := h.Service.Renew(context.Background(), c.Param("id"), expiry)
	if err != nil {
		if errors.Is(err, service.ErrSchoolNotFound) {
			utils.NotFoundResponse(c, "School not found")
			return
		}
		utils.InternalErrorResponse(c, "Error renewing license", err)
		return
	}
	c.JSON(http.StatusOK, school)
}

// parseExpiry accepts the date formats the admin console sends.
func parseExpiry(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
