package model

import (
	"time"

	"github.com/google/uuid"
)

// AdminModel mirrors the 'admins' table. OTP columns hold at most one
// pending login code per admin; both are cleared on successful verify.
type AdminModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	Name         string    `gorm:"type:varchar(100)"`
	Picture      string    `gorm:"type:varchar(500)"`
	GoogleID     string    `gorm:"type:varchar(255)"`
	OTP          *string   `gorm:"type:varchar(10)"`
	OTPExpiresAt *time.Time
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdminModel) TableName() string {
	return "admins"
}

// AuthorizedEmailModel mirrors the 'authorized_emails' table, the
// allow-list gating all admin access.
type AuthorizedEmailModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email     string    `gorm:"type:varchar(255);unique;not null"`
	AddedBy   string    `gorm:"type:varchar(255)"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AuthorizedEmailModel) TableName() string {
	return "authorized_emails"
}
