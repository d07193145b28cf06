package availability

import (
	availabilityRepo "schedly/database/repository/availability"
	"schedly/models"
	"schedly/utils"

	"github.com/google/uuid"
)

// AvailabilityService defines business logic for the weekly availability
// template.
type AvailabilityService interface {
	// GetAvailability returns the user's template, creating the default
	// "always available" week on first read.
	GetAvailability(userID string) (*models.Availability, error)
	// UpdateAvailability replaces the days sequence wholesale, creating the
	// record if the user has none yet.
	UpdateAvailability(userID string, days []models.AvailabilityDay) (*models.Availability, error)
}

// DefaultAvailabilityService is the production implementation.
type DefaultAvailabilityService struct {
	Repo availabilityRepo.AvailabilityRepository
}

func (s *DefaultAvailabilityService) GetAvailability(userID string) (*models.Availability, error) {
	stored, err := s.Repo.GetByUser(userID)
	if err != nil {
		return nil, utils.InternalError(err)
	}
	if stored != nil {
		return stored, nil
	}

	created := &models.Availability{
		ID:     uuid.New().String(),
		UserID: userID,
		Days:   models.DefaultWeek(),
	}
	if err := s.Repo.Insert(created); err != nil {
		return nil, utils.InternalError(err)
	}
	return created, nil
}

func (s *DefaultAvailabilityService) UpdateAvailability(userID string, days []models.AvailabilityDay) (*models.Availability, error) {
	stored, err := s.Repo.GetByUser(userID)
	if err != nil {
		return nil, utils.InternalError(err)
	}

	if stored == nil {
		created := &models.Availability{
			ID:     uuid.New().String(),
			UserID: userID,
			Days:   days,
		}
		if created.Days == nil {
			created.Days = []models.AvailabilityDay{}
		}
		if err := s.Repo.Insert(created); err != nil {
			return nil, utils.InternalError(err)
		}
		return created, nil
	}

	if err := s.Repo.ReplaceDays(userID, days); err != nil {
		return nil, utils.InternalError(err)
	}
	stored.Days = days
	return stored, nil
}
