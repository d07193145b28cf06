package booking

import (
	"time"

	bookingRepo "schedly/database/repository/booking"
	"schedly/models"
	"schedly/services/scheduling"
)

// CreateBookingInput carries the payload for a new booking.
type CreateBookingInput struct {
	Title     string
	Details   string
	DateLabel string
	TimeLabel string
	Start     time.Time
	End       time.Time
	Invitees  []string
}

// UpdateBookingInput carries a partial update. Empty strings and zero times
// mean "no change"; Invitees is applied only when InviteesSet is true.
type UpdateBookingInput struct {
	Title       string
	Details     string
	DateLabel   string
	TimeLabel   string
	Start       time.Time
	End         time.Time
	Status      string
	Invitees    []string
	InviteesSet bool
}

// BookingService defines business logic for booking lifecycle operations.
type BookingService interface {
	// CreateBooking gates the host's schedule on conflicts, normalizes the
	// invitee list and persists the booking.
	CreateBooking(host models.User, in CreateBookingInput) (*models.Booking, error)
	// ListBookings returns bookings the user hosts or participates in,
	// optionally filtered by record-level status, sorted by start time.
	ListBookings(userID, status string) ([]models.Booking, error)
	// UpdateBooking applies a host-scoped partial update.
	UpdateBooking(host models.User, bookingID string, in UpdateBookingInput) (*models.Booking, error)
	// DeleteBooking removes a host-scoped booking.
	DeleteBooking(hostID, bookingID string) error
	// UpdateBookingStatus records the actor's RSVP on their own participant
	// entry; the host additionally sets the record-level status.
	UpdateBookingStatus(actorID, bookingID, status string) (*models.Booking, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo       bookingRepo.BookingRepository
	Detector   scheduling.Detector
	Normalizer scheduling.Normalizer
	Locks      *scheduling.UserLocks
}
