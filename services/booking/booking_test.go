package booking_test

import (
	"sort"
	"testing"
	"time"

	"schedly/models"
	"schedly/services/booking"
	"schedly/services/scheduling"
	"schedly/utils"

	"github.com/stretchr/testify/require"
)

const (
	hostID  = "11111111-1111-1111-1111-111111111111"
	aliceID = "22222222-2222-2222-2222-222222222222"
	bobID   = "33333333-3333-3333-3333-333333333333"
	carolID = "44444444-4444-4444-4444-444444444444"
)

func at(hour int) time.Time {
	return time.Date(2025, time.March, 10, hour, 0, 0, 0, time.UTC)
}

type memBookingRepo struct {
	bookings map[string]*models.Booking
}

func newMemBookingRepo() *memBookingRepo {
	return &memBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (r *memBookingRepo) Insert(b *models.Booking) error {
	b.DedupeParticipants()
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *memBookingRepo) GetByID(id string) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	cp.Participants = append([]models.Participant(nil), b.Participants...)
	return &cp, nil
}

func (r *memBookingRepo) GetByIDAndHost(id, hostID string) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok || b.HostID != hostID {
		return nil, nil
	}
	cp := *b
	cp.Participants = append([]models.Participant(nil), b.Participants...)
	return &cp, nil
}

func (r *memBookingRepo) ListForUser(userID, status string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if status != "" && b.Status != status {
			continue
		}
		involved := b.HostID == userID
		for _, p := range b.Participants {
			if p.UserID == userID {
				involved = true
				break
			}
		}
		if involved {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out, nil
}

func (r *memBookingRepo) Update(b *models.Booking) error {
	b.DedupeParticipants()
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *memBookingRepo) DeleteByIDAndHost(id, hostID string) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok || b.HostID != hostID {
		return nil, nil
	}
	delete(r.bookings, id)
	return b, nil
}

func (r *memBookingRepo) CancelByEventID(eventID string) error {
	for _, b := range r.bookings {
		if b.EventID == eventID {
			b.Status = models.StatusCanceled
		}
	}
	return nil
}

func (r *memBookingRepo) HasOverlapping(hostID string, tr models.TimeRange, excludeID string) (bool, error) {
	for _, b := range r.bookings {
		if b.HostID != hostID || b.ID == excludeID {
			continue
		}
		if b.TimeRange.Overlaps(tr) {
			return true, nil
		}
	}
	return false, nil
}

type fakeDirectory struct {
	byID    map[string]*models.User
	byEmail map[string]*models.User
}

func (f *fakeDirectory) GetByID(id string) (*models.User, error)       { return f.byID[id], nil }
func (f *fakeDirectory) GetByEmail(email string) (*models.User, error) { return f.byEmail[email], nil }

func newFixture() (*booking.DefaultBookingService, *memBookingRepo) {
	repo := newMemBookingRepo()
	alice := &models.User{ID: aliceID, Email: "alice@example.com", FirstName: "Alice"}
	dir := &fakeDirectory{
		byID:    map[string]*models.User{aliceID: alice},
		byEmail: map[string]*models.User{"alice@example.com": alice},
	}
	svc := &booking.DefaultBookingService{
		Repo:       repo,
		Detector:   scheduling.Detector{Source: repo},
		Normalizer: scheduling.Normalizer{Directory: dir},
		Locks:      scheduling.NewUserLocks(),
	}
	return svc, repo
}

func host() models.User {
	return models.User{ID: hostID, Email: "host@example.com", FirstName: "Hal"}
}

func TestCreateBooking(t *testing.T) {
	svc, repo := newFixture()

	created, err := svc.CreateBooking(host(), booking.CreateBookingInput{
		Title:    "Intro call",
		Start:    at(10),
		End:      at(11),
		Invitees: []string{aliceID, "alice@example.com", bobID},
	})
	require.NoError(t, err)
	require.Equal(t, models.StatusPending, created.Status)
	require.Empty(t, created.EventID)
	require.Equal(t, []models.Participant{
		{UserID: hostID, Status: models.StatusAccepted},
		{UserID: aliceID, Status: models.StatusPending},
		{UserID: bobID, Status: models.StatusPending},
	}, created.Participants)
	require.Len(t, repo.bookings, 1)
}

func TestCreateBookingConflict(t *testing.T) {
	svc, repo := newFixture()

	_, err := svc.CreateBooking(host(), booking.CreateBookingInput{Title: "First", Start: at(10), End: at(11)})
	require.NoError(t, err)

	_, err = svc.CreateBooking(host(), booking.CreateBookingInput{Title: "Second", Start: at(10).Add(30 * time.Minute), End: at(11).Add(30 * time.Minute)})
	require.Equal(t, utils.CodeTimeConflict, utils.CodeOf(err))
	require.Len(t, repo.bookings, 1)
}

func TestCreateBookingDifferentHostsDoNotConflict(t *testing.T) {
	svc, _ := newFixture()

	_, err := svc.CreateBooking(host(), booking.CreateBookingInput{Title: "Hal's", Start: at(10), End: at(11)})
	require.NoError(t, err)

	other := models.User{ID: bobID, Email: "bob@example.com"}
	_, err = svc.CreateBooking(other, booking.CreateBookingInput{Title: "Bob's", Start: at(10), End: at(11)})
	require.NoError(t, err)
}

func TestListBookingsStatusFilter(t *testing.T) {
	svc, _ := newFixture()

	first, err := svc.CreateBooking(host(), booking.CreateBookingInput{Title: "First", Start: at(10), End: at(11)})
	require.NoError(t, err)
	_, err = svc.CreateBooking(host(), booking.CreateBookingInput{Title: "Second", Start: at(14), End: at(15)})
	require.NoError(t, err)

	_, err = svc.UpdateBookingStatus(hostID, first.ID, models.StatusAccepted)
	require.NoError(t, err)

	accepted, err := svc.ListBookings(hostID, models.StatusAccepted)
	require.NoError(t, err)
	require.Len(t, accepted, 1)
	require.Equal(t, "First", accepted[0].Title)

	all, err := svc.ListBookings(hostID, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
}

func TestUpdateBooking(t *testing.T) {
	t.Run("partial update leaves untouched fields", func(t *testing.T) {
		svc, _ := newFixture()
		created, err := svc.CreateBooking(host(), booking.CreateBookingInput{Title: "Intro call", Details: "zoom", Start: at(10), End: at(11)})
		require.NoError(t, err)

		updated, err := svc.UpdateBooking(host(), created.ID, booking.UpdateBookingInput{Details: "meet"})
		require.NoError(t, err)
		require.Equal(t, "Intro call", updated.Title)
		require.Equal(t, "meet", updated.Details)
	})

	t.Run("range shift within own slot excludes itself", func(t *testing.T) {
		svc, _ := newFixture()
		created, err := svc.CreateBooking(host(), booking.CreateBookingInput{Title: "Intro call", Start: at(10), End: at(11)})
		require.NoError(t, err)

		_, err = svc.UpdateBooking(host(), created.ID, booking.UpdateBookingInput{Start: at(10).Add(15 * time.Minute), End: at(11).Add(15 * time.Minute)})
		require.NoError(t, err)
	})

	t.Run("range overlapping another booking rejected", func(t *testing.T) {
		svc, _ := newFixture()
		_, err := svc.CreateBooking(host(), booking.CreateBookingInput{Title: "First", Start: at(10), End: at(11)})
		require.NoError(t, err)
		second, err := svc.CreateBooking(host(), booking.CreateBookingInput{Title: "Second", Start: at(14), End: at(15)})
		require.NoError(t, err)

		_, err = svc.UpdateBooking(host(), second.ID, booking.UpdateBookingInput{Start: at(10), End: at(12)})
		require.Equal(t, utils.CodeTimeConflict, utils.CodeOf(err))
	})

	t.Run("unknown id reported as not found", func(t *testing.T) {
		svc, _ := newFixture()
		_, err := svc.UpdateBooking(host(), "missing", booking.UpdateBookingInput{Title: "x"})
		require.Equal(t, utils.CodeNotFound, utils.CodeOf(err))
	})
}

func TestDeleteBooking(t *testing.T) {
	svc, repo := newFixture()
	created, err := svc.CreateBooking(host(), booking.CreateBookingInput{Title: "Intro call", Start: at(10), End: at(11)})
	require.NoError(t, err)

	require.Equal(t, utils.CodeNotFound, utils.CodeOf(svc.DeleteBooking(bobID, created.ID)))
	require.NoError(t, svc.DeleteBooking(hostID, created.ID))
	require.Empty(t, repo.bookings)
}

func TestUpdateBookingStatus(t *testing.T) {
	newBookingWithGuests := func(t *testing.T) (*booking.DefaultBookingService, *models.Booking) {
		t.Helper()
		svc, _ := newFixture()
		created, err := svc.CreateBooking(host(), booking.CreateBookingInput{
			Title:    "Intro call",
			Start:    at(10),
			End:      at(11),
			Invitees: []string{aliceID, bobID},
		})
		require.NoError(t, err)
		return svc, created
	}

	t.Run("participant sets only their own entry", func(t *testing.T) {
		svc, created := newBookingWithGuests(t)

		updated, err := svc.UpdateBookingStatus(aliceID, created.ID, models.StatusAccepted)
		require.NoError(t, err)
		require.Equal(t, models.StatusPending, updated.Status)
		require.Equal(t, models.StatusAccepted, statusOf(t, updated, aliceID))
		require.Equal(t, models.StatusPending, statusOf(t, updated, bobID))
	})

	t.Run("host sets record status and own entry", func(t *testing.T) {
		svc, created := newBookingWithGuests(t)

		updated, err := svc.UpdateBookingStatus(hostID, created.ID, models.StatusRejected)
		require.NoError(t, err)
		require.Equal(t, models.StatusRejected, updated.Status)
		require.Equal(t, models.StatusRejected, statusOf(t, updated, hostID))
		require.Equal(t, models.StatusPending, statusOf(t, updated, aliceID))
	})

	t.Run("outsider forbidden", func(t *testing.T) {
		svc, created := newBookingWithGuests(t)

		_, err := svc.UpdateBookingStatus(carolID, created.ID, models.StatusAccepted)
		require.Equal(t, utils.CodeForbidden, utils.CodeOf(err))
	})

	t.Run("only accepted and rejected are valid targets", func(t *testing.T) {
		svc, created := newBookingWithGuests(t)

		for _, status := range []string{models.StatusPending, models.StatusCanceled, "Confirmed", ""} {
			_, err := svc.UpdateBookingStatus(aliceID, created.ID, status)
			require.Equal(t, utils.CodeInvalidStatus, utils.CodeOf(err))
		}
	})

	t.Run("unknown booking reported as not found", func(t *testing.T) {
		svc, _ := newFixture()
		_, err := svc.UpdateBookingStatus(aliceID, "missing", models.StatusAccepted)
		require.Equal(t, utils.CodeNotFound, utils.CodeOf(err))
	})
}

func statusOf(t *testing.T, b *models.Booking, userID string) string {
	t.Helper()
	for _, p := range b.Participants {
		if p.UserID == userID {
			return p.Status
		}
	}
	t.Fatalf("participant %s not found", userID)
	return ""
}
