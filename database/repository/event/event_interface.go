package eventRepo

import "schedly/models"

// EventRepository defines data access for event records. Get methods return
// (nil, nil) when no event matches, including when the id exists but belongs
// to a different host.
type EventRepository interface {
	// Insert persists a new event document.
	Insert(event *models.Event) error
	// GetByIDAndHost retrieves an event scoped to its host.
	GetByIDAndHost(id, hostID string) (*models.Event, error)
	// ListForUser retrieves events the user hosts or participates in.
	ListForUser(userID string) ([]models.Event, error)
	// Update replaces the stored event document.
	Update(event *models.Event) error
	// DeleteByIDAndHost removes the event scoped to its host and returns the
	// deleted document, or (nil, nil) if nothing matched.
	DeleteByIDAndHost(id, hostID string) (*models.Event, error)
	// HasOverlapping reports whether the host owns any event overlapping the
	// range, excluding excludeID when non-empty.
	HasOverlapping(hostID string, r models.TimeRange, excludeID string) (bool, error)
}
