package scheduling

import "schedly/models"

// RangeSource exposes the overlap query of a single record store. Event and
// booking stores are checked independently; they never cross-check each other.
type RangeSource interface {
	HasOverlapping(ownerID string, r models.TimeRange, excludeID string) (bool, error)
}

// Detector gates create and update operations on temporal conflicts within
// one owner's schedule.
type Detector struct {
	Source RangeSource
}

// HasConflict reports whether the candidate range overlaps any record owned
// by userID. excludeID skips the record being edited; pass "" on create.
// The first match decides, no enumeration of all conflicts.
func (d Detector) HasConflict(userID string, candidate models.TimeRange, excludeID string) (bool, error) {
	return d.Source.HasOverlapping(userID, candidate, excludeID)
}
