package user

import (
	"fmt"
	"time"

	"schedly/config"
	"schedly/models"
	"schedly/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func tokenTTL() time.Duration {
	return time.Duration(config.AppConfig.TokenTTLHours) * time.Hour
}

// RegisterUser validates the signup details, creates the user record and
// opens a session.
func (s *DefaultUserService) RegisterUser(in RegisterInput) (*AuthResponse, error) {
	existing, err := s.Repo.GetByEmail(in.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser := &models.User{
		ID:           uuid.New().String(),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: string(hash),
		Avatar:       in.Avatar,
	}
	if err := s.Repo.Create(newUser); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.openSession(newUser)
}

// AuthenticateUser verifies credentials and opens a session.
func (s *DefaultUserService) AuthenticateUser(email, password string) (*AuthResponse, error) {
	userRec, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("AuthenticateUser: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if userRec == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.openSession(userRec)
}

// RevokeAuthToken drops the cached token hash, invalidating the session.
func (s *DefaultUserService) RevokeAuthToken(userID string) error {
	return utils.RevokeAuthToken(userID)
}

// openSession mints a JWT and caches its hash so the auth middleware can
// verify the token has not been revoked.
func (s *DefaultUserService) openSession(userRec *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(userRec.ID, userRec.Email, tokenTTL())
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	if err := utils.CacheAuthTokenHash(userRec.ID, utils.HashToken(token), tokenTTL()); err != nil {
		return nil, fmt.Errorf("failed to cache session token: %w", err)
	}
	return &AuthResponse{User: *userRec, Token: token}, nil
}
