package models

// Event is a host-defined meeting slot with invitees.
type Event struct {
	ID          string `bson:"id" json:"id"`
	HostID      string `bson:"hostId" json:"hostId"`
	HostName    string `bson:"hostName" json:"hostName"`
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`

	TimeRange `bson:",inline"`

	Password    string `bson:"password,omitempty" json:"password,omitempty"`
	BannerColor string `bson:"bannerColor" json:"bannerColor"`
	TitleColor  string `bson:"titleColor" json:"titleColor"`
	LinkColor   string `bson:"linkColor" json:"linkColor"`
	BannerURL   string `bson:"bannerUrl,omitempty" json:"bannerUrl,omitempty"`
	MeetingLink string `bson:"meetingLink,omitempty" json:"meetingLink,omitempty"`

	Participants []Participant `bson:"participants" json:"participants"`
	IsActive     bool          `bson:"isActive" json:"isActive"`
}
