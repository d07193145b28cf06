package handlers

import (
	"net/http"
	"time"

	"schedly/services/booking"
	"schedly/services/scheduling"
	"schedly/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the booking lifecycle endpoints.
type BookingHandler struct {
	Service booking.BookingService
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

type bookingPayload struct {
	Title      string      `json:"title"`
	Details    string      `json:"details"`
	DateLabel  string      `json:"dateLabel"`
	TimeLabel  string      `json:"timeLabel"`
	StartTime  time.Time   `json:"startTime"`
	EndTime    time.Time   `json:"endTime"`
	Status     string      `json:"status"`
	InviteeIDs interface{} `json:"inviteeIds"`
}

// GetBookings handles GET /api/bookings?status=...
func (h *BookingHandler) GetBookings(c *gin.Context) {
	authUser, ok := currentUser(c)
	if !ok {
		return
	}

	bookings, err := h.Service.ListBookings(authUser.ID, c.Query("status"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	authUser, ok := currentUser(c)
	if !ok {
		return
	}

	var req bookingPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	if req.Title == "" {
		utils.JSONError(c, http.StatusBadRequest, "Title is required", "")
		return
	}
	if !req.StartTime.Before(req.EndTime) {
		utils.JSONError(c, http.StatusBadRequest, "Invalid time range", "startTime must be before endTime")
		return
	}

	created, err := h.Service.CreateBooking(authUser, booking.CreateBookingInput{
		Title:     req.Title,
		Details:   req.Details,
		DateLabel: req.DateLabel,
		TimeLabel: req.TimeLabel,
		Start:     req.StartTime,
		End:       req.EndTime,
		Invitees:  scheduling.TokenizeInvitees(req.InviteeIDs),
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateBooking handles PUT /api/bookings/:id.
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	authUser, ok := currentUser(c)
	if !ok {
		return
	}

	var req bookingPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	if !req.StartTime.IsZero() && !req.EndTime.IsZero() && !req.StartTime.Before(req.EndTime) {
		utils.JSONError(c, http.StatusBadRequest, "Invalid time range", "startTime must be before endTime")
		return
	}

	updated, err := h.Service.UpdateBooking(authUser, c.Param("id"), booking.UpdateBookingInput{
		Title:       req.Title,
		Details:     req.Details,
		DateLabel:   req.DateLabel,
		TimeLabel:   req.TimeLabel,
		Start:       req.StartTime,
		End:         req.EndTime,
		Status:      req.Status,
		Invitees:    scheduling.TokenizeInvitees(req.InviteeIDs),
		InviteesSet: inviteesProvided(req.InviteeIDs),
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteBooking handles DELETE /api/bookings/:id.
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	authUser, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.Service.DeleteBooking(authUser.ID, c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted"})
}

// UpdateBookingStatus handles PUT /api/bookings/:id/status.
func (h *BookingHandler) UpdateBookingStatus(c *gin.Context) {
	authUser, ok := currentUser(c)
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	updated, err := h.Service.UpdateBookingStatus(authUser.ID, c.Param("id"), req.Status)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
