package scheduling

import (
	"fmt"
	"strings"

	"schedly/models"
	"schedly/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Directory is the user-lookup capability the normalizer resolves invitee
// emails against. Lookups return (nil, nil) when no user matches.
type Directory interface {
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
}

// Normalizer turns raw invitee input into the deduplicated, ordered
// participant list of an event or booking.
type Normalizer struct {
	Directory Directory
}

// TokenizeInvitees flattens the invitee payload into trimmed, non-empty
// tokens. Clients send either a comma-separated string or a list of id/email
// values; anything else yields no tokens.
func TokenizeInvitees(raw interface{}) []string {
	var parts []string
	switch v := raw.(type) {
	case string:
		parts = strings.Split(v, ",")
	case []string:
		parts = v
	case []interface{}:
		for _, item := range v {
			parts = append(parts, fmt.Sprint(item))
		}
	}

	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// NormalizeParticipants builds the participant list for a record owned by
// hostID. Tokens equal to the host id are stripped, as are tokens matching
// hostEmail case-insensitively when hostEmail is non-empty (event path).
// The host is prepended and always ends up first with status Accepted;
// every other resolved invitee starts Pending. Tokens that look like user
// ids are taken as direct references; the rest are treated as emails and
// resolved through the directory, with unresolved emails dropped. The output
// contains each resolved user exactly once, first occurrence winning.
func (n Normalizer) NormalizeParticipants(tokens []string, hostID, hostEmail string) ([]models.Participant, error) {
	filtered := make([]string, 0, len(tokens)+1)
	for _, t := range tokens {
		if t == hostID {
			continue
		}
		if hostEmail != "" && strings.EqualFold(t, hostEmail) {
			continue
		}
		filtered = append(filtered, t)
	}

	filtered = dedupeStrings(filtered)
	filtered = append([]string{hostID}, filtered...)
	// Guards against the host id reappearing after the prepend.
	filtered = dedupeStrings(filtered)

	participants := make([]models.Participant, 0, len(filtered))
	for _, token := range filtered {
		if _, err := uuid.Parse(token); err == nil {
			participants = append(participants, models.Participant{UserID: token, Status: models.StatusPending})
			continue
		}
		invited, err := n.Directory.GetByEmail(token)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve invitee %q: %w", token, err)
		}
		if invited == nil {
			utils.GetLogger().Warn("dropping unresolved invitee email", zap.String("email", token))
			continue
		}
		participants = append(participants, models.Participant{UserID: invited.ID, Status: models.StatusPending})
	}

	for i := range participants {
		if participants[i].UserID == hostID {
			participants[i].Status = models.StatusAccepted
		}
	}

	return dedupeParticipants(participants), nil
}

// PopulateParticipants fills the transient display fields from the
// directory. Lookup failures leave the entry as stored.
func PopulateParticipants(dir Directory, participants []models.Participant) {
	cache := make(map[string]*models.User)
	for i, p := range participants {
		u, ok := cache[p.UserID]
		if !ok {
			var err error
			u, err = dir.GetByID(p.UserID)
			if err != nil {
				utils.GetLogger().Warn("failed to resolve participant", zap.String("userId", p.UserID), zap.Error(err))
				continue
			}
			cache[p.UserID] = u
		}
		if u == nil {
			continue
		}
		participants[i].Name = u.DisplayName()
		participants[i].Email = u.Email
		participants[i].Avatar = u.Avatar
	}
}

func dedupeStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := in[:0]
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func dedupeParticipants(in []models.Participant) []models.Participant {
	seen := make(map[string]struct{}, len(in))
	out := in[:0]
	for _, p := range in {
		if _, ok := seen[p.UserID]; ok {
			continue
		}
		seen[p.UserID] = struct{}{}
		out = append(out, p)
	}
	return out
}
