package handlers

import (
	"context"
	"errors"
	"net/http"

	"mathgame-service/internal/middleware"
	"mathgame-service/internal/models"
	"mathgame-service/internal/service"
	"mathgame-service/internal/utils"

	"github.com/gin-gonic/gin"
)

type StoreHandler struct {
	Service *service.StoreService
}

func NewStoreHandler(s *service.StoreService) *StoreHandler {
	return &StoreHandler{Service: s}
}

type itemRequest struct {
	ItemID string `json:"itemId"`
}

func (h *StoreHandler) ListItems(c *gin.Context) {
	items, err := h.Service.ListItems(context.Background())
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to load store items", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *StoreHandler) Buy(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ItemID == "" {
		utils.BadRequestResponse(c, "itemId is required")
		return
	}

	updated, err := h.Service.Buy(context.Background(), user.ID, req.ItemID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrItemNotFound):
			utils.NotFoundResponse(c, "Item not found")
		case errors.Is(err, models.ErrAlreadyOwned):
			utils.BadRequestResponse(c, "You already own this item")
		case errors.Is(err, models.ErrInsufficientFunds):
			utils.BadRequestResponse(c, "Not enough currency")
		default:
			utils.InternalErrorResponse(c, "Purchase failed", err)
		}
		return
	}

	itemsPurchased.Inc()
	c.JSON(http.StatusOK, gin.H{"message": "Item purchased successfully", "currency": updated.Currency})
}

func (h *StoreHandler) Equip(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ItemID == "" {
		utils.BadRequestResponse(c, "itemId is required")
		return
	}

	updated, err := h.Service.Equip(context.Background(), user.ID, req.ItemID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrItemNotFound):
			utils.NotFoundResponse(c, "Item not found")
		case errors.Is(err, models.ErrNotOwned):
			utils.ForbiddenResponse(c, "You don't own this item")
		case errors.Is(err, models.ErrUnknownCategory):
			utils.BadRequestResponse(c, "Unknown item category")
		default:
			utils.InternalErrorResponse(c, "Equip failed", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item equipped successfully", "avatar": updated.Avatar})
}

func (h *StoreHandler) Avatar(c *gin.Context) {
	user := middleware.CurrentUser(c)

	view, err := h.Service.Avatar(context.Background(), user)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to fetch avatar", err)
		return
	}
	c.JSON(http.StatusOK, view)
}
