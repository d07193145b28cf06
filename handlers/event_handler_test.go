package handlers_test

import (
	"net/http"
	"testing"

	"schedly/handlers"
	"schedly/models"
	"schedly/services/event"
	"schedly/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type stubEventService struct {
	createFn func(host models.User, in event.CreateEventInput) (*models.Event, error)
	listFn   func(userID string) ([]models.Event, error)
	updateFn func(host models.User, id string, in event.UpdateEventInput) (*models.Event, error)
	deleteFn func(hostID, id string) error
	toggleFn func(hostID, id string) (*models.Event, error)
}

func (s *stubEventService) CreateEvent(host models.User, in event.CreateEventInput) (*models.Event, error) {
	return s.createFn(host, in)
}

func (s *stubEventService) ListEvents(userID string) ([]models.Event, error) {
	return s.listFn(userID)
}

func (s *stubEventService) UpdateEvent(host models.User, id string, in event.UpdateEventInput) (*models.Event, error) {
	return s.updateFn(host, id, in)
}

func (s *stubEventService) DeleteEvent(hostID, id string) error {
	return s.deleteFn(hostID, id)
}

func (s *stubEventService) ToggleEventActive(hostID, id string) (*models.Event, error) {
	return s.toggleFn(hostID, id)
}

func eventRouter(svc event.EventService, user models.User) *gin.Engine {
	r := gin.New()
	h := handlers.NewEventHandler(svc)
	group := r.Group("/api/events", setUserInContext(user))
	group.POST("", h.CreateEvent)
	group.GET("", h.GetEvents)
	group.PUT("/:id", h.UpdateEvent)
	group.DELETE("/:id", h.DeleteEvent)
	group.PATCH("/:id/toggle", h.ToggleEventActive)
	return r
}

func TestCreateEventHandler(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := &stubEventService{
			createFn: func(host models.User, in event.CreateEventInput) (*models.Event, error) {
				require.Equal(t, "host-1", host.ID)
				require.Equal(t, "Office hours", in.Title)
				return &models.Event{ID: "e-1", Title: in.Title, IsActive: true}, nil
			},
		}
		rec := doJSON(t, eventRouter(svc, testUser()), http.MethodPost, "/api/events", gin.H{
			"title":     "Office hours",
			"startTime": "2025-03-10T10:00:00Z",
			"endTime":   "2025-03-10T11:00:00Z",
		})
		require.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("end before start rejected", func(t *testing.T) {
		rec := doJSON(t, eventRouter(&stubEventService{}, testUser()), http.MethodPost, "/api/events", gin.H{
			"title":     "Office hours",
			"startTime": "2025-03-10T12:00:00Z",
			"endTime":   "2025-03-10T11:00:00Z",
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "Invalid time range")
	})
}

func TestUpdateEventHandler(t *testing.T) {
	t.Run("partial update skips range validation", func(t *testing.T) {
		var captured event.UpdateEventInput
		svc := &stubEventService{
			updateFn: func(_ models.User, id string, in event.UpdateEventInput) (*models.Event, error) {
				captured = in
				return &models.Event{ID: id}, nil
			},
		}
		rec := doJSON(t, eventRouter(svc, testUser()), http.MethodPut, "/api/events/e-1", gin.H{"title": "Renamed"})
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "Renamed", captured.Title)
		require.True(t, captured.Start.IsZero())
		require.False(t, captured.InviteesSet)
	})

	t.Run("not found maps to 404", func(t *testing.T) {
		svc := &stubEventService{
			updateFn: func(models.User, string, event.UpdateEventInput) (*models.Event, error) {
				return nil, utils.NotFoundError("Event not found or not authorized")
			},
		}
		rec := doJSON(t, eventRouter(svc, testUser()), http.MethodPut, "/api/events/missing", gin.H{"title": "x"})
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDeleteEventHandler(t *testing.T) {
	svc := &stubEventService{
		deleteFn: func(hostID, id string) error {
			require.Equal(t, "host-1", hostID)
			require.Equal(t, "e-1", id)
			return nil
		},
	}
	rec := doJSON(t, eventRouter(svc, testUser()), http.MethodDelete, "/api/events/e-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Canceled")
}

func TestToggleEventHandler(t *testing.T) {
	active := true
	svc := &stubEventService{
		toggleFn: func(hostID, id string) (*models.Event, error) {
			active = !active
			return &models.Event{ID: id, IsActive: active}, nil
		},
	}
	router := eventRouter(svc, testUser())

	rec := doJSON(t, router, http.MethodPatch, "/api/events/e-1/toggle", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Event is now Inactive")

	rec = doJSON(t, router, http.MethodPatch, "/api/events/e-1/toggle", nil)
	require.Contains(t, rec.Body.String(), "Event is now Active")
}
