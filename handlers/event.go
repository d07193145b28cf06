package handlers

import (
	"net/http"
	"time"

	"schedly/services/event"
	"schedly/services/scheduling"
	"schedly/utils"

	"github.com/gin-gonic/gin"
)

// EventHandler exposes the event lifecycle endpoints.
type EventHandler struct {
	Service event.EventService
}

// NewEventHandler constructs an EventHandler.
func NewEventHandler(svc event.EventService) *EventHandler {
	return &EventHandler{Service: svc}
}

type eventPayload struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	StartTime   time.Time   `json:"startTime"`
	EndTime     time.Time   `json:"endTime"`
	Password    string      `json:"password"`
	HostName    string      `json:"hostName"`
	BannerColor string      `json:"bannerColor"`
	TitleColor  string      `json:"titleColor"`
	LinkColor   string      `json:"linkColor"`
	BannerURL   string      `json:"bannerUrl"`
	MeetingLink string      `json:"meetingLink"`
	InviteeIDs  interface{} `json:"inviteeIds"`
}

// inviteesProvided mirrors the truthiness rule clients rely on: absent and
// empty-string payloads mean "leave the list alone", while an empty array is
// an explicit reset to host-only.
func inviteesProvided(raw interface{}) bool {
	if raw == nil {
		return false
	}
	if s, ok := raw.(string); ok && s == "" {
		return false
	}
	return true
}

// CreateEvent handles POST /api/events.
func (h *EventHandler) CreateEvent(c *gin.Context) {
	authUser, ok := currentUser(c)
	if !ok {
		return
	}

	var req eventPayload
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

	created, err := h.Service.CreateEvent(authUser, event.CreateEventInput{
		HostName:    req.HostName,
		Title:       req.Title,
		Description: req.Description,
		Start:       req.StartTime,
		End:         req.EndTime,
		Password:    req.Password,
		BannerColor: req.BannerColor,
		TitleColor:  req.TitleColor,
		LinkColor:   req.LinkColor,
		BannerURL:   req.BannerURL,
		MeetingLink: req.MeetingLink,
		Invitees:    scheduling.TokenizeInvitees(req.InviteeIDs),
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetEvents handles GET /api/events.
func (h *EventHandler) GetEvents(c *gin.Context) {
	authUser, ok := currentUser(c)
	if !ok {
		return
	}

	events, err := h.Service.ListEvents(authUser.ID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

// UpdateEvent handles PUT /api/events/:id.
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	authUser, ok := currentUser(c)
	if !ok {
		return
	}

	var req eventPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	if !req.StartTime.IsZero() && !req.EndTime.IsZero() && !req.StartTime.Before(req.EndTime) {
		utils.JSONError(c, http.StatusBadRequest, "Invalid time range", "startTime must be before endTime")
		return
	}

	updated, err := h.Service.UpdateEvent(authUser, c.Param("id"), event.UpdateEventInput{
		HostName:    req.HostName,
		Title:       req.Title,
		Description: req.Description,
		Start:       req.StartTime,
		End:         req.EndTime,
		Password:    req.Password,
		BannerColor: req.BannerColor,
		TitleColor:  req.TitleColor,
		LinkColor:   req.LinkColor,
		BannerURL:   req.BannerURL,
		MeetingLink: req.MeetingLink,
		Invitees:    scheduling.TokenizeInvitees(req.InviteeIDs),
		InviteesSet: inviteesProvided(req.InviteeIDs),
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteEvent handles DELETE /api/events/:id.
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	authUser, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.Service.DeleteEvent(authUser.ID, c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted and associated bookings updated to Canceled"})
}

// ToggleEventActive handles PATCH /api/events/:id/toggle.
func (h *EventHandler) ToggleEventActive(c *gin.Context) {
	authUser, ok := currentUser(c)
	if !ok {
		return
	}

	toggled, err := h.Service.ToggleEventActive(authUser.ID, c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	state := "Inactive"
	if toggled.IsActive {
		state = "Active"
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event is now " + state})
}
