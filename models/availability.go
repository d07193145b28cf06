package models

// ClockInterval is a clock-time block ("09:00" - "12:30") within a weekday.
type ClockInterval struct {
	Start string `bson:"start" json:"start"`
	End   string `bson:"end" json:"end"`
}

// AvailabilityDay is one weekday entry of a user's weekly template.
type AvailabilityDay struct {
	Day         string          `bson:"day" json:"day"`
	Unavailable bool            `bson:"unavailable" json:"unavailable"`
	Intervals   []ClockInterval `bson:"intervals" json:"intervals"`
}

// Availability is the per-user weekly availability template, one record per
// user, auto-created with DefaultWeek on first read.
type Availability struct {
	ID     string            `bson:"id" json:"id"`
	UserID string            `bson:"userId" json:"userId"`
	Days   []AvailabilityDay `bson:"days" json:"days"`
}

// DefaultWeek returns the "always available" template: seven entries,
// nothing blocked, no intervals.
func DefaultWeek() []AvailabilityDay {
	days := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	week := make([]AvailabilityDay, 0, len(days))
	for _, d := range days {
		week = append(week, AvailabilityDay{Day: d, Unavailable: false, Intervals: []ClockInterval{}})
	}
	return week
}
