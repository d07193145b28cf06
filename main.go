package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"schedly/config"
	"schedly/database"
	availabilityRepo "schedly/database/repository/availability"
	bookingRepo "schedly/database/repository/booking"
	eventRepo "schedly/database/repository/event"
	userRepoPkg "schedly/database/repository/user"
	"schedly/handlers"
	"schedly/middleware"
	"schedly/routes"
	"schedly/services/availability"
	"schedly/services/booking"
	"schedly/services/event"
	"schedly/services/scheduling"
	"schedly/services/user"
	"schedly/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	eventsRepo := eventRepo.NewMongoEventRepo()
	bookingsRepo := bookingRepo.NewMongoBookingRepo()
	availRepo := availabilityRepo.NewMongoAvailabilityRepo()

	// core scheduling components, shared by both lifecycle services.
	normalizer := scheduling.Normalizer{Directory: userRepo}
	locks := scheduling.NewUserLocks()

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}
	eventService := &event.DefaultEventService{
		Repo:       eventsRepo,
		Bookings:   bookingsRepo,
		Detector:   scheduling.Detector{Source: eventsRepo},
		Normalizer: normalizer,
		Locks:      locks,
	}
	bookingService := &booking.DefaultBookingService{
		Repo:       bookingsRepo,
		Detector:   scheduling.Detector{Source: bookingsRepo},
		Normalizer: normalizer,
		Locks:      locks,
	}
	availabilityService := &availability.DefaultAvailabilityService{
		Repo: availRepo,
	}

	// handlers.
	userHandler := handlers.NewUserHandler(userService)
	eventHandler := handlers.NewEventHandler(eventService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		// User endpoints.
		RegisterUserHandler:     userHandler.RegisterUser,
		AuthenticateUserHandler: userHandler.AuthenticateUser,
		LogoutUserHandler:       userHandler.LogoutUser,
		GetProfileHandler:       userHandler.GetProfile,
		UpdateProfileHandler:    userHandler.UpdateProfile,

		// Event endpoints.
		CreateEventHandler:       eventHandler.CreateEvent,
		GetEventsHandler:         eventHandler.GetEvents,
		UpdateEventHandler:       eventHandler.UpdateEvent,
		DeleteEventHandler:       eventHandler.DeleteEvent,
		ToggleEventActiveHandler: eventHandler.ToggleEventActive,

		// Booking endpoints.
		GetBookingsHandler:         bookingHandler.GetBookings,
		CreateBookingHandler:       bookingHandler.CreateBooking,
		UpdateBookingHandler:       bookingHandler.UpdateBooking,
		DeleteBookingHandler:       bookingHandler.DeleteBooking,
		UpdateBookingStatusHandler: bookingHandler.UpdateBookingStatus,

		// Availability endpoints.
		GetAvailabilityHandler:    availabilityHandler.GetAvailability,
		UpdateAvailabilityHandler: availabilityHandler.UpdateAvailability,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
