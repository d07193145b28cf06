package models

// Participant statuses. The host's own entry is Accepted from the moment a
// record is created; every invitee starts out Pending.
const (
	StatusPending  = "Pending"
	StatusAccepted = "Accepted"
	StatusRejected = "Rejected"
	StatusCanceled = "Canceled"
)

// Participant ties a user to an event or booking together with their RSVP.
type Participant struct {
	UserID string `bson:"userId" json:"userId"`
	Status string `bson:"status" json:"status"`

	// Display fields resolved from the user directory on reads; never stored.
	Name   string `bson:"-" json:"name,omitempty"`
	Email  string `bson:"-" json:"email,omitempty"`
	Avatar string `bson:"-" json:"avatar,omitempty"`
}
