package model

import (
	"time"

	"github.com/google/uuid"
)

type UserCoinLog struct {
	UserCoinLogID         uint      `gorm:"column:user_coin_log_id;primaryKey;autoIncrement" json:"user_coin_log_id"`
	UserCoinLogUserID     uuid.UUID `gorm:"column:user_coin_log_user_id;type:uuid;not null;index:idx_user_coin_logs_user_id" json:"user_coin_log_user_id"`
	UserCoinLogCoins      int       `gorm:"column:user_coin_log_coins;not null" json:"user_coin_log_coins"`
	UserCoinLogSourceType int       `gorm:"column:user_coin_log_source_type;not null" json:"user_coin_log_source_type"`
	UserCoinLogSourceID   int       `gorm:"column:user_coin_log_source_id" json:"user_coin_log_source_id"`
	CreatedAt             time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (UserCoinLog) TableName() string {
	return "user_coin_logs"
}
