package handlers

import (
	"net/http"

	"schedly/models"
	"schedly/services/availability"
	"schedly/utils"

	"github.com/gin-gonic/gin"
)

// AvailabilityHandler exposes the weekly availability endpoints.
type AvailabilityHandler struct {
	Service availability.AvailabilityService
}

// NewAvailabilityHandler constructs an AvailabilityHandler.
func NewAvailabilityHandler(svc availability.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc}
}

// GetAvailability handles GET /api/availability.
func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	authUser, ok := currentUser(c)
	if !ok {
		return
	}

	result, err := h.Service.GetAvailability(authUser.ID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// UpdateAvailability handles PUT /api/availability.
func (h *AvailabilityHandler) UpdateAvailability(c *gin.Context) {
	authUser, ok := currentUser(c)
	if !ok {
		return
	}

	var req struct {
		Days []models.AvailabilityDay `json:"days"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	result, err := h.Service.UpdateAvailability(authUser.ID, req.Days)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
