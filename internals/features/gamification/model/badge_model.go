package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type BadgeModel struct {
	BadgeID          uint           `gorm:"column:badge_id;primaryKey;autoIncrement" json:"badge_id"`
	BadgeName        string         `gorm:"column:badge_name;type:varchar(100);not null;unique" json:"badge_name"`
	BadgeDescription string         `gorm:"column:badge_description;type:text" json:"badge_description"`
	BadgeIconURL     string         `gorm:"column:badge_icon_url;type:varchar(512)" json:"badge_icon_url"`
	BadgeCriteria    datatypes.JSON `gorm:"column:badge_criteria;type:jsonb" json:"badge_criteria"` // award rules, evaluated by the worker that grants badges
	BadgeCreatedAt   time.Time      `gorm:"column:badge_created_at;type:timestamptz;autoCreateTime" json:"badge_created_at"`
}

func (BadgeModel) TableName() string {
	return "badges"
}

type UserBadgeModel struct {
	UserBadgeID        uint      `gorm:"column:user_badge_id;primaryKey;autoIncrement" json:"user_badge_id"`
	UserBadgeUserID    uuid.UUID `gorm:"column:user_badge_user_id;type:uuid;not null;index:idx_user_badges_user_id;uniqueIndex:ux_user_badges_user_badge" json:"user_badge_user_id"`
	UserBadgeBadgeID   uint      `gorm:"column:user_badge_badge_id;not null;uniqueIndex:ux_user_badges_user_badge" json:"user_badge_badge_id"`
	UserBadgeAwardedAt time.Time `gorm:"column:user_badge_awarded_at;type:timestamptz;autoCreateTime" json:"user_badge_awarded_at"`

	Badge BadgeModel `gorm:"foreignKey:UserBadgeBadgeID;references:BadgeID" json:"badge"`
}

func (UserBadgeModel) TableName() string {
	return "user_badges"
}
