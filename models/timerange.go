package models

import "time"

// TimeRange is a half-open [Start, End) interval over already-normalized
// instants. No timezone conversion happens here; callers must supply
// comparable times.
type TimeRange struct {
	Start time.Time `bson:"startTime" json:"startTime"`
	End   time.Time `bson:"endTime" json:"endTime"`
}

// Overlaps reports whether the two ranges share any instant.
// Touching endpoints (a.End == b.Start) do not count as overlap.
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.Start.Before(other.End) && other.Start.Before(r.End)
}

// Valid reports whether the range is non-degenerate (Start strictly before End).
func (r TimeRange) Valid() bool {
	return r.Start.Before(r.End)
}
