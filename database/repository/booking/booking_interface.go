package bookingRepo

import "schedly/models"

// BookingRepository defines data access for booking records. Get methods
// return (nil, nil) when no booking matches.
type BookingRepository interface {
	// Insert persists a new booking document.
	Insert(booking *models.Booking) error
	// GetByID retrieves a booking regardless of ownership (status transitions
	// are open to any listed participant, not just the host).
	GetByID(id string) (*models.Booking, error)
	// GetByIDAndHost retrieves a booking scoped to its host.
	GetByIDAndHost(id, hostID string) (*models.Booking, error)
	// ListForUser retrieves bookings the user hosts or participates in,
	// sorted by start time ascending. status filters when non-empty.
	ListForUser(userID, status string) ([]models.Booking, error)
	// Update replaces the stored booking document.
	Update(booking *models.Booking) error
	// DeleteByIDAndHost removes the booking scoped to its host and returns
	// the deleted document, or (nil, nil) if nothing matched.
	DeleteByIDAndHost(id, hostID string) (*models.Booking, error)
	// CancelByEventID sets status Canceled on every booking mirroring the
	// event. Records are retained.
	CancelByEventID(eventID string) error
	// HasOverlapping reports whether the host owns any booking overlapping
	// the range, excluding excludeID when non-empty.
	HasOverlapping(hostID string, r models.TimeRange, excludeID string) (bool, error)
}
