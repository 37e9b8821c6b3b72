package model

import (
	"time"

	"github.com/google/uuid"
)

type UserActivityLog struct {
	UserActivityLogID     uint      `gorm:"column:user_activity_log_id;primaryKey;autoIncrement" json:"user_activity_log_id"`
	UserActivityLogUserID uuid.UUID `gorm:"column:user_activity_log_user_id;type:uuid;not null;index:idx_user_activity_logs_user_id" json:"user_activity_log_user_id"`
	UserActivityLogType   string    `gorm:"column:user_activity_log_type;type:varchar(50);not null" json:"user_activity_log_type"`
	CreatedAt             time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (UserActivityLog) TableName() string {
	return "user_activity_logs"
}
