package user

import (
	"fmt"

	"schedly/models"
	"schedly/utils"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

// GetProfile retrieves a user by its unique ID.
func (s *DefaultUserService) GetProfile(userID string) (*models.User, error) {
	userRec, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if userRec == nil {
		return nil, utils.NotFoundError("User not found")
	}
	return userRec, nil
}

// UpdateProfile updates non-empty profile fields using a partial update.
// Empty incoming fields are skipped, not cleared.
func (s *DefaultUserService) UpdateProfile(userID string, in UpdateProfileInput) (*models.User, error) {
	userRec, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if userRec == nil {
		return nil, utils.NotFoundError("User not found")
	}

	updateFields := bson.M{}
	if in.FirstName != "" {
		updateFields["firstName"] = in.FirstName
	}
	if in.LastName != "" {
		updateFields["lastName"] = in.LastName
	}
	if in.Email != "" {
		updateFields["email"] = in.Email
	}
	if in.Avatar != "" {
		updateFields["avatar"] = in.Avatar
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		updateFields["passwordHash"] = string(hash)
	}

	if len(updateFields) > 0 {
		if err := s.Repo.UpdateSetDocument(userID, updateFields); err != nil {
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
	}

	updated, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch updated user: %w", err)
	}
	return updated, nil
}
