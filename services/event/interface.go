package event

import (
	"time"

	bookingRepo "schedly/database/repository/booking"
	eventRepo "schedly/database/repository/event"
	"schedly/models"
	"schedly/services/scheduling"
)

// CreateEventInput carries the payload for a new event.
type CreateEventInput struct {
	HostName    string
	Title       string
	Description string
	Start       time.Time
	End         time.Time
	Password    string
	BannerColor string
	TitleColor  string
	LinkColor   string
	BannerURL   string
	MeetingLink string
	Invitees    []string
}

// UpdateEventInput carries a partial update. Empty strings and zero times
// mean "no change"; Invitees is applied only when InviteesSet is true and
// then replaces the participant list wholesale.
type UpdateEventInput struct {
	HostName    string
	Title       string
	Description string
	Start       time.Time
	End         time.Time
	Password    string
	BannerColor string
	TitleColor  string
	LinkColor   string
	BannerURL   string
	MeetingLink string
	Invitees    []string
	InviteesSet bool
}

// EventService defines business logic for event lifecycle operations.
type EventService interface {
	// CreateEvent gates the host's schedule on conflicts, normalizes the
	// invitee list and persists the event plus its best-effort booking mirror.
	CreateEvent(host models.User, in CreateEventInput) (*models.Event, error)
	// ListEvents returns events the user hosts or participates in.
	ListEvents(userID string) ([]models.Event, error)
	// UpdateEvent applies a host-scoped partial update.
	UpdateEvent(host models.User, eventID string, in UpdateEventInput) (*models.Event, error)
	// DeleteEvent removes a host-scoped event and cancels mirrored bookings.
	DeleteEvent(hostID, eventID string) error
	// ToggleEventActive flips the isActive flag.
	ToggleEventActive(hostID, eventID string) (*models.Event, error)
}

// DefaultEventService is the production implementation.
type DefaultEventService struct {
	Repo       eventRepo.EventRepository
	Bookings   bookingRepo.BookingRepository
	Detector   scheduling.Detector
	Normalizer scheduling.Normalizer
	Locks      *scheduling.UserLocks
}
