package models

// Booking is a scheduled meeting, created directly by a user or as the
// mirror of an Event (EventID set). DateLabel and TimeLabel are display-only
// strings supplied by clients.
type Booking struct {
	ID        string `bson:"id" json:"id"`
	HostID    string `bson:"hostId" json:"hostId"`
	EventID   string `bson:"eventId,omitempty" json:"eventId,omitempty"`
	Title     string `bson:"title" json:"title"`
	Details   string `bson:"details,omitempty" json:"details,omitempty"`
	DateLabel string `bson:"dateLabel,omitempty" json:"dateLabel,omitempty"`
	TimeLabel string `bson:"timeLabel,omitempty" json:"timeLabel,omitempty"`

	TimeRange `bson:",inline"`

	Status       string        `bson:"status" json:"status"`
	Participants []Participant `bson:"participants" json:"participants"`
}

// DedupeParticipants removes duplicate participant entries keyed by user id,
// keeping the first occurrence. Enforced at the persistence boundary so no
// booking is ever stored with the same user listed twice.
func (b *Booking) DedupeParticipants() {
	seen := make(map[string]struct{}, len(b.Participants))
	unique := b.Participants[:0]
	for _, p := range b.Participants {
		if _, ok := seen[p.UserID]; ok {
			continue
		}
		seen[p.UserID] = struct{}{}
		unique = append(unique, p)
	}
	b.Participants = unique
}
