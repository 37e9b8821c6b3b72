package model

import (
	"time"

	"github.com/google/uuid"
)

type EventModel struct {
	EventID          uuid.UUID  `gorm:"column:event_id;type:uuid;default:gen_random_uuid();primaryKey" json:"event_id"`
	EventTitle       string     `gorm:"column:event_title;type:varchar(255);not null" json:"event_title"`
	EventSlug        string     `gorm:"column:event_slug;type:varchar(100);not null;unique" json:"event_slug"`
	EventDescription string     `gorm:"column:event_description;type:text" json:"event_description"`
	EventLocation    string     `gorm:"column:event_location;type:varchar(255)" json:"event_location"`
	EventStartsAt    *time.Time `gorm:"column:event_starts_at;type:timestamptz" json:"event_starts_at"`
	EventCreatedAt   time.Time  `gorm:"column:event_created_at;type:timestamptz;autoCreateTime" json:"event_created_at"`
}

func (EventModel) TableName() string {
	return "events"
}
