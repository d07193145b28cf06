package models_test

import (
	"testing"

	"schedly/models"

	"github.com/stretchr/testify/require"
)

func TestDedupeParticipants(t *testing.T) {
	b := models.Booking{
		Participants: []models.Participant{
			{UserID: "host", Status: models.StatusAccepted},
			{UserID: "alice", Status: models.StatusPending},
			{UserID: "host", Status: models.StatusPending},
			{UserID: "alice", Status: models.StatusAccepted},
			{UserID: "bob", Status: models.StatusPending},
		},
	}

	b.DedupeParticipants()

	require.Equal(t, []models.Participant{
		{UserID: "host", Status: models.StatusAccepted},
		{UserID: "alice", Status: models.StatusPending},
		{UserID: "bob", Status: models.StatusPending},
	}, b.Participants)
}

func TestDedupeParticipantsEmpty(t *testing.T) {
	b := models.Booking{}
	b.DedupeParticipants()
	require.Empty(t, b.Participants)
}
