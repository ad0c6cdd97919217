// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Maid is a published housemaid profile. Bilingual fields carry the Arabic
// rendering alongside the English one; list fields are stored as arrays.
type Maid struct {
	ID                  uuid.UUID
	Name                string
	NameAr              string
	Nationality         string
	NationalityAr       string
	Role                string // Job title, e.g. "Housemaid", "Nanny".
	RoleAr              string
	Experience          int // Years of experience.
	Salary              int // Monthly salary in OMR.
	Age                 int
	Skills              []string
	SkillsAr            []string
	Languages           []string
	LanguagesAr         []string
	PreviousCountries   []string
	PreviousCountriesAr []string
	Images              []string // URLs of uploaded photos.
	Hidden              bool     // Hidden profiles are excluded from public listings.
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Review is a customer rating, either of a specific maid or a general review
// of the agency (MaidID nil). A user may leave at most one of each kind.
type Review struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	MaidID    *uuid.UUID // nil for a general review of the agency.
	Rating    int        // 1 to 5.
	Comment   string     // Optional, at most 500 characters.
	Hidden    bool       // Hidden reviews are excluded from public listings.
	User      *User      // Author summary, populated on reads.
	Maid      *Maid      // Reviewed maid summary, populated on reads when MaidID is set.
	CreatedAt time.Time
}

// ContactForm is a message submitted through the public contact page.
type ContactForm struct {
	ID        uuid.UUID
	Name      string
	Phone     string
	Email     string // Optional.
	Message   string
	Status    string // "new" on submission, updated by admins.
	CreatedAt time.Time
}

// Contact form statuses.
const (
	ContactStatusNew       = "new"
	ContactStatusContacted = "contacted"
	ContactStatusClosed    = "closed"
)
