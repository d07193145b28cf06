package booking

import (
	"schedly/models"
	"schedly/services/scheduling"
	"schedly/utils"

	"github.com/google/uuid"
)

// CreateBooking gates the host's schedule on conflicts, normalizes the
// invitee list and persists the booking with status Pending.
func (s *DefaultBookingService) CreateBooking(host models.User, in CreateBookingInput) (*models.Booking, error) {
	tr := models.TimeRange{Start: in.Start, End: in.End}

	unlock := s.Locks.Lock(host.ID)
	defer unlock()

	conflict, err := s.Detector.HasConflict(host.ID, tr, "")
	if err != nil {
		return nil, utils.InternalError(err)
	}
	if conflict {
		return nil, utils.TimeConflictError()
	}

	// Booking invitees never strip the host email, only the host id.
	participants, err := s.Normalizer.NormalizeParticipants(in.Invitees, host.ID, "")
	if err != nil {
		return nil, utils.InternalError(err)
	}

	newBooking := &models.Booking{
		ID:           uuid.New().String(),
		HostID:       host.ID,
		Title:        in.Title,
		Details:      in.Details,
		DateLabel:    in.DateLabel,
		TimeLabel:    in.TimeLabel,
		TimeRange:    tr,
		Status:       models.StatusPending,
		Participants: participants,
	}

	if err := s.Repo.Insert(newBooking); err != nil {
		return nil, utils.InternalError(err)
	}
	return newBooking, nil
}

// ListBookings returns bookings the user hosts or participates in, with
// participant display fields populated from the directory.
func (s *DefaultBookingService) ListBookings(userID, status string) ([]models.Booking, error) {
	bookings, err := s.Repo.ListForUser(userID, status)
	if err != nil {
		return nil, utils.InternalError(err)
	}
	for i := range bookings {
		scheduling.PopulateParticipants(s.Normalizer.Directory, bookings[i].Participants)
	}
	return bookings, nil
}

// UpdateBooking applies a host-scoped partial update. A non-matching id/host
// pair reads as a plain not-found; empty incoming fields leave the stored
// values untouched. When both range bounds are present the conflict check
// runs again with the booking's own id excluded. An invitee edit replaces
// the participant list wholesale.
func (s *DefaultBookingService) UpdateBooking(host models.User, bookingID string, in UpdateBookingInput) (*models.Booking, error) {
	unlock := s.Locks.Lock(host.ID)
	defer unlock()

	stored, err := s.Repo.GetByIDAndHost(bookingID, host.ID)
	if err != nil {
		return nil, utils.InternalError(err)
	}
	if stored == nil {
		return nil, utils.NotFoundError("Booking not found")
	}

	if !in.Start.IsZero() && !in.End.IsZero() {
		tr := models.TimeRange{Start: in.Start, End: in.End}
		conflict, err := s.Detector.HasConflict(host.ID, tr, bookingID)
		if err != nil {
			return nil, utils.InternalError(err)
		}
		if conflict {
			return nil, utils.TimeConflictError()
		}
	}

	if in.Title != "" {
		stored.Title = in.Title
	}
	if in.Details != "" {
		stored.Details = in.Details
	}
	if in.DateLabel != "" {
		stored.DateLabel = in.DateLabel
	}
	if in.TimeLabel != "" {
		stored.TimeLabel = in.TimeLabel
	}
	if !in.Start.IsZero() {
		stored.Start = in.Start
	}
	if !in.End.IsZero() {
		stored.End = in.End
	}
	if in.Status != "" {
		stored.Status = in.Status
	}

	if in.InviteesSet {
		participants, err := s.Normalizer.NormalizeParticipants(in.Invitees, host.ID, "")
		if err != nil {
			return nil, utils.InternalError(err)
		}
		stored.Participants = participants
	}

	if err := s.Repo.Update(stored); err != nil {
		return nil, utils.InternalError(err)
	}
	return stored, nil
}

// DeleteBooking removes a host-scoped booking.
func (s *DefaultBookingService) DeleteBooking(hostID, bookingID string) error {
	deleted, err := s.Repo.DeleteByIDAndHost(bookingID, hostID)
	if err != nil {
		return utils.InternalError(err)
	}
	if deleted == nil {
		return utils.NotFoundError("Booking not found")
	}
	return nil
}

// UpdateBookingStatus records the actor's RSVP. Only Accepted and Rejected
// are valid targets. The actor must be the host or a listed participant;
// both paths set the status on the actor's own participant entry, and the
// host path additionally overwrites the record-level status.
func (s *DefaultBookingService) UpdateBookingStatus(actorID, bookingID, status string) (*models.Booking, error) {
	if status != models.StatusAccepted && status != models.StatusRejected {
		return nil, utils.InvalidStatusError("Invalid status")
	}

	stored, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, utils.InternalError(err)
	}
	if stored == nil {
		return nil, utils.NotFoundError("Booking not found")
	}

	isHost := stored.HostID == actorID
	isParticipant := false
	for _, p := range stored.Participants {
		if p.UserID == actorID {
			isParticipant = true
			break
		}
	}
	if !isHost && !isParticipant {
		return nil, utils.ForbiddenError("Not authorized")
	}

	if isHost {
		stored.Status = status
	}
	for i := range stored.Participants {
		if stored.Participants[i].UserID == actorID {
			stored.Participants[i].Status = status
		}
	}

	if err := s.Repo.Update(stored); err != nil {
		return nil, utils.InternalError(err)
	}
	return stored, nil
}
