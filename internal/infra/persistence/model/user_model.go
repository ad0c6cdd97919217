// Package model defines the GORM persistence models mirroring the
// PostgreSQL schema.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email     string    `gorm:"type:varchar(255);unique;not null"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Phone     *string   `gorm:"type:varchar(20);uniqueIndex"`
	Image     string    `gorm:"type:varchar(500)"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Accounts []AccountModel `gorm:"foreignKey:UserID"`
	Sessions []SessionModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
