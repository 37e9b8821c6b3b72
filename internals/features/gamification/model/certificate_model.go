package model

import (
	"time"

	"github.com/google/uuid"
)

type UserCertificateModel struct {
	UserCertificateID       uint      `gorm:"column:user_certificate_id;primaryKey;autoIncrement" json:"user_certificate_id"`
	UserCertificateUserID   uuid.UUID `gorm:"column:user_certificate_user_id;type:uuid;not null;index:idx_user_certificates_user_id" json:"user_certificate_user_id"`
	UserCertificateTitle    string    `gorm:"column:user_certificate_title;type:varchar(255);not null" json:"user_certificate_title"`
	UserCertificateIssuedAt time.Time `gorm:"column:user_certificate_issued_at;type:timestamptz;autoCreateTime" json:"user_certificate_issued_at"`
}

func (UserCertificateModel) TableName() string {
	return "user_certificates"
}
