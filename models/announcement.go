package models

import "time"

// Announcement is a campus notice authored by an admin or teacher.
// PublishAt, when set, keeps the announcement hidden until the background
// worker flips Published.
type Announcement struct {
	ID        string     `bson:"id" json:"id"`
	Title     string     `bson:"title" json:"title"`
	Content   string     `bson:"content" json:"content"`
	EventDate string     `bson:"eventDate,omitempty" json:"eventDate,omitempty"`
	EventTime string     `bson:"eventTime,omitempty" json:"eventTime,omitempty"`
	Location  string     `bson:"location,omitempty" json:"location,omitempty"`
	Date      time.Time  `bson:"date" json:"date"`
	CreatedBy string     `bson:"createdBy" json:"createdBy"`
	PublishAt *time.Time `bson:"publishAt,omitempty" json:"publishAt,omitempty"`
	Published bool       `bson:"published" json:"published"`
}

// AnnouncementInput is the create/update payload.
type AnnouncementInput struct {
	Title     string     `json:"title" binding:"required"`
	Content   string     `json:"content" binding:"required"`
	EventDate string     `json:"eventDate,omitempty"`
	EventTime string     `json:"eventTime,omitempty"`
	Location  string     `json:"location,omitempty"`
	PublishAt *time.Time `json:"publishAt,omitempty"`
}
