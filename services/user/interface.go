package user

import (
	"errors"

	userRepo "schedly/database/repository/user"
	"schedly/models"
)

// ErrInvalidCredentials is returned on any authentication failure; callers
// must not learn whether the email or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrEmailTaken is returned when registering an already-known email.
var ErrEmailTaken = errors.New("email already registered")

// AuthResponse is what register and login hand back to the HTTP layer.
type AuthResponse struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

// RegisterInput carries the signup payload.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Avatar    string
}

// UpdateProfileInput carries a partial profile update. Empty fields mean
// "no change".
type UpdateProfileInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Avatar    string
}

// UserService defines business logic for user operations.
type UserService interface {
	// RegisterUser creates a new user record and returns a fresh session token.
	RegisterUser(in RegisterInput) (*AuthResponse, error)
	// AuthenticateUser verifies credentials and returns a fresh session token.
	AuthenticateUser(email, password string) (*AuthResponse, error)
	// GetProfile retrieves a user by its unique ID.
	GetProfile(userID string) (*models.User, error)
	// UpdateProfile applies a partial update to the user's own record.
	UpdateProfile(userID string, in UpdateProfileInput) (*models.User, error)
	// RevokeAuthToken invalidates the user's cached session token (logout).
	RevokeAuthToken(userID string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
