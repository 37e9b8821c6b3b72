package model

import (
	"time"

	"github.com/google/uuid"
)

// Point sources. Award computation lives outside this service; the logs are
// read-side only here.
const (
	PointSourceEventCheckIn = 1
	PointSourceQuestion     = 2
	PointSourceAnswer       = 3
)

type UserPointLog struct {
	UserPointLogID         uint      `gorm:"column:user_point_log_id;primaryKey;autoIncrement" json:"user_point_log_id"`
	UserPointLogUserID     uuid.UUID `gorm:"column:user_point_log_user_id;type:uuid;not null;index:idx_user_point_logs_user_id" json:"user_point_log_user_id"`
	UserPointLogPoints     int       `gorm:"column:user_point_log_points;not null" json:"user_point_log_points"`
	UserPointLogSourceType int       `gorm:"column:user_point_log_source_type;not null" json:"user_point_log_source_type"`
	UserPointLogSourceID   int       `gorm:"column:user_point_log_source_id" json:"user_point_log_source_id"`
	CreatedAt              time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (UserPointLog) TableName() string {
	return "user_point_logs"
}
