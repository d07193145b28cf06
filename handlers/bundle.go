package handlers

import (
	userRepo "schedly/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle carries every endpoint handler plus the user repository the
// auth middleware needs, so route registration stays a single wiring step.
type HandlerBundle struct {
	UserRepo userRepo.UserRepository

	// User endpoints.
	RegisterUserHandler     gin.HandlerFunc
	AuthenticateUserHandler gin.HandlerFunc
	LogoutUserHandler       gin.HandlerFunc
	GetProfileHandler       gin.HandlerFunc
	UpdateProfileHandler    gin.HandlerFunc

	// Event endpoints.
	CreateEventHandler       gin.HandlerFunc
	GetEventsHandler         gin.HandlerFunc
	UpdateEventHandler       gin.HandlerFunc
	DeleteEventHandler       gin.HandlerFunc
	ToggleEventActiveHandler gin.HandlerFunc

	// Booking endpoints.
	GetBookingsHandler         gin.HandlerFunc
	CreateBookingHandler       gin.HandlerFunc
	UpdateBookingHandler       gin.HandlerFunc
	DeleteBookingHandler       gin.HandlerFunc
	UpdateBookingStatusHandler gin.HandlerFunc

	// Availability endpoints.
	GetAvailabilityHandler    gin.HandlerFunc
	UpdateAvailabilityHandler gin.HandlerFunc
}
