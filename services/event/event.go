package event

import (
	"schedly/models"
	"schedly/services/scheduling"
	"schedly/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultBannerColor = "#ffffff"
	defaultTitleColor  = "#000000"
	defaultLinkColor   = "#0000ff"
)

// CreateEvent gates the host's schedule on conflicts, normalizes the invitee
// list and persists the event. A mirror booking carrying the event id is
// created best-effort so the meeting shows up in booking views; a mirror
// failure is logged, never fatal.
func (s *DefaultEventService) CreateEvent(host models.User, in CreateEventInput) (*models.Event, error) {
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

	participants, err := s.Normalizer.NormalizeParticipants(in.Invitees, host.ID, host.Email)
	if err != nil {
		return nil, utils.InternalError(err)
	}

	newEvent := &models.Event{
		ID:           uuid.New().String(),
		HostID:       host.ID,
		HostName:     in.HostName,
		Title:        in.Title,
		Description:  in.Description,
		TimeRange:    tr,
		Password:     in.Password,
		BannerColor:  in.BannerColor,
		TitleColor:   in.TitleColor,
		LinkColor:    in.LinkColor,
		BannerURL:    in.BannerURL,
		MeetingLink:  in.MeetingLink,
		Participants: participants,
		IsActive:     true,
	}
	if newEvent.BannerColor == "" {
		newEvent.BannerColor = defaultBannerColor
	}
	if newEvent.TitleColor == "" {
		newEvent.TitleColor = defaultTitleColor
	}
	if newEvent.LinkColor == "" {
		newEvent.LinkColor = defaultLinkColor
	}

	if err := s.Repo.Insert(newEvent); err != nil {
		return nil, utils.InternalError(err)
	}

	mirror := &models.Booking{
		ID:           uuid.New().String(),
		HostID:       host.ID,
		EventID:      newEvent.ID,
		Title:        newEvent.Title,
		Details:      newEvent.Description,
		TimeRange:    newEvent.TimeRange,
		Status:       models.StatusPending,
		Participants: append([]models.Participant(nil), participants...),
	}
	if err := s.Bookings.Insert(mirror); err != nil {
		utils.GetLogger().Warn("failed to create mirror booking for event",
			zap.String("eventId", newEvent.ID), zap.Error(err))
	}

	return newEvent, nil
}

// ListEvents returns events the user hosts or participates in, with
// participant display fields populated from the directory.
func (s *DefaultEventService) ListEvents(userID string) ([]models.Event, error) {
	events, err := s.Repo.ListForUser(userID)
	if err != nil {
		return nil, utils.InternalError(err)
	}
	for i := range events {
		scheduling.PopulateParticipants(s.Normalizer.Directory, events[i].Participants)
	}
	return events, nil
}

// UpdateEvent applies a host-scoped partial update. A non-matching id/host
// pair is reported as a plain not-found; empty incoming fields leave the
// stored values untouched. When both range bounds are present the conflict
// check runs again with the event's own id excluded. An invitee edit
// replaces the participant list wholesale, dropping any RSVP history of
// participants not re-listed.
func (s *DefaultEventService) UpdateEvent(host models.User, eventID string, in UpdateEventInput) (*models.Event, error) {
	unlock := s.Locks.Lock(host.ID)
	defer unlock()

	stored, err := s.Repo.GetByIDAndHost(eventID, host.ID)
	if err != nil {
		return nil, utils.InternalError(err)
	}
	if stored == nil {
		return nil, utils.NotFoundError("Event not found or not authorized")
	}

	if !in.Start.IsZero() && !in.End.IsZero() {
		tr := models.TimeRange{Start: in.Start, End: in.End}
		conflict, err := s.Detector.HasConflict(host.ID, tr, eventID)
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
	if in.Description != "" {
		stored.Description = in.Description
	}
	if !in.Start.IsZero() {
		stored.Start = in.Start
	}
	if !in.End.IsZero() {
		stored.End = in.End
	}
	if in.Password != "" {
		stored.Password = in.Password
	}
	if in.HostName != "" {
		stored.HostName = in.HostName
	}
	if in.BannerColor != "" {
		stored.BannerColor = in.BannerColor
	}
	if in.TitleColor != "" {
		stored.TitleColor = in.TitleColor
	}
	if in.LinkColor != "" {
		stored.LinkColor = in.LinkColor
	}
	if in.BannerURL != "" {
		stored.BannerURL = in.BannerURL
	}
	if in.MeetingLink != "" {
		stored.MeetingLink = in.MeetingLink
	}

	if in.InviteesSet {
		participants, err := s.Normalizer.NormalizeParticipants(in.Invitees, host.ID, host.Email)
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

// DeleteEvent removes a host-scoped event. Bookings mirroring the event are
// marked Canceled, not deleted.
func (s *DefaultEventService) DeleteEvent(hostID, eventID string) error {
	deleted, err := s.Repo.DeleteByIDAndHost(eventID, hostID)
	if err != nil {
		return utils.InternalError(err)
	}
	if deleted == nil {
		return utils.NotFoundError("Event not found or not authorized")
	}

	if err := s.Bookings.CancelByEventID(eventID); err != nil {
		return utils.InternalError(err)
	}
	return nil
}

// ToggleEventActive flips the isActive flag. No conflict re-check.
func (s *DefaultEventService) ToggleEventActive(hostID, eventID string) (*models.Event, error) {
	stored, err := s.Repo.GetByIDAndHost(eventID, hostID)
	if err != nil {
		return nil, utils.InternalError(err)
	}
	if stored == nil {
		return nil, utils.NotFoundError("Event not found")
	}

	stored.IsActive = !stored.IsActive
	if err := s.Repo.Update(stored); err != nil {
		return nil, utils.InternalError(err)
	}
	return stored, nil
}
