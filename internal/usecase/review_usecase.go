package usecase

import (
	"context"

	"github.com/google/uuid"

	"sayma/internal/domain/entity"
)

// CreateReviewInput defines the data for a new review. MaidID nil means
// a general review of the agency.
type CreateReviewInput struct {
	UserID  uuid.UUID
	MaidID  *uuid.UUID
	Rating  int
	Comment string
}

// ReviewUsecase defines the customer review operations.
type ReviewUsecase interface {
	// Create adds a review. A user may leave one review per maid plus
	// one general review.
	Create(ctx context.Context, input CreateReviewInput) (*entity.Review, error)

	// List returns visible reviews, optionally filtered by maid.
	List(ctx context.Context, maidID *uuid.UUID) ([]*entity.Review, error)

	// ToggleVisibility flips a review's hidden flag (admin moderation).
	ToggleVisibility(ctx context.Context, id uuid.UUID) (*entity.Review, error)
}

// ContactInput defines a contact form submission.
type ContactInput struct {
	Name    string
	Phone   string
	Email   string
	Message string
}

// ContactUsecase defines the contact form operations.
type ContactUsecase interface {
	// Submit stores a new contact form submission with status "new".
	Submit(ctx context.Context, input ContactInput) (*entity.ContactForm, error)

	// List returns all submissions for the back office.
	List(ctx context.Context) ([]*entity.ContactForm, error)

	// UpdateStatus moves a submission through triage.
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*entity.ContactForm, error)

	// Delete removes a submission.
	Delete(ctx context.Context, id uuid.UUID) error
}
