package userRepo

import (
	"schedly/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines methods for user data access. Get methods return
// (nil, nil) when no user matches.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address.
	GetByEmail(email string) (*models.User, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// UpdateSetDocument applies a partial update to the user record.
	UpdateSetDocument(id string, updateDoc bson.M) error
}
