package model

import (
	"time"

	"github.com/google/uuid"
)

// MaidModel mirrors the 'maids' table. List-valued columns are stored
// as JSONB through GORM's json serializer.
type MaidModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name                string    `gorm:"type:varchar(100);not null"`
	NameAr              string    `gorm:"type:varchar(100)"`
	Nationality         string    `gorm:"type:varchar(100)"`
	NationalityAr       string    `gorm:"type:varchar(100)"`
	Role                string    `gorm:"type:varchar(100)"`
	RoleAr              string    `gorm:"type:varchar(100)"`
	Experience          int
	Salary              int
	Age                 int
	Skills              []string `gorm:"serializer:json;type:jsonb"`
	SkillsAr            []string `gorm:"serializer:json;type:jsonb"`
	Languages           []string `gorm:"serializer:json;type:jsonb"`
	LanguagesAr         []string `gorm:"serializer:json;type:jsonb"`
	PreviousCountries   []string `gorm:"serializer:json;type:jsonb"`
	PreviousCountriesAr []string `gorm:"serializer:json;type:jsonb"`
	Images              []string `gorm:"serializer:json;type:jsonb"`
	Hidden              bool     `gorm:"not null;default:false;index"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (MaidModel) TableName() string {
	return "maids"
}

// ReviewModel mirrors the 'reviews' table. MaidID is null for general
// agency reviews; the partial unique indexes enforcing one review per
// user per target live in the migration.
type ReviewModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	MaidID    *uuid.UUID `gorm:"type:uuid;index"`
	Rating    int        `gorm:"not null"`
	Comment   string     `gorm:"type:varchar(500)"`
	Hidden    bool       `gorm:"not null;default:false"`
	CreatedAt time.Time

	User *UserModel `gorm:"foreignKey:UserID"`
	Maid *MaidModel `gorm:"foreignKey:MaidID"`
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}

// ContactFormModel mirrors the 'contact_forms' table.
type ContactFormModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Phone     string    `gorm:"type:varchar(20);not null"`
	Email     string    `gorm:"type:varchar(255)"`
	Message   string    `gorm:"type:text;not null"`
	Status    string    `gorm:"type:varchar(20);not null;default:'new';index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ContactFormModel) TableName() string {
	return "contact_forms"
}
