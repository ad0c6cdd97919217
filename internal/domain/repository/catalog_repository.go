package repository

import (
	"context"

	"sayma/internal/domain/entity"

	"github.com/google/uuid"
)

// MaidRepository persists housemaid profiles.
type MaidRepository interface {
	// Create persists a new profile.
	Create(ctx context.Context, maid *entity.Maid) error

	// Update modifies an existing profile.
	Update(ctx context.Context, maid *entity.Maid) error

	// Delete removes a profile by ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID retrieves a profile by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Maid, error)

	// List returns profiles newest first. Hidden profiles are excluded
	// unless includeHidden is set.
	List(ctx context.Context, includeHidden bool) ([]*entity.Maid, error)
}

// ReviewRepository persists customer reviews.
type ReviewRepository interface {
	// Create persists a new review.
	Create(ctx context.Context, review *entity.Review) error

	// Update modifies an existing review (used for the hidden toggle).
	Update(ctx context.Context, review *entity.Review) error

	// FindByID retrieves a review by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)

	// FindByUserAndMaid retrieves a user's review of a specific maid, or
	// their general review when maidID is nil.
	FindByUserAndMaid(ctx context.Context, userID uuid.UUID, maidID *uuid.UUID) (*entity.Review, error)

	// List returns visible reviews newest first, optionally filtered by
	// maid, with author and maid summaries preloaded.
	List(ctx context.Context, maidID *uuid.UUID) ([]*entity.Review, error)
}

// ContactRepository persists contact form submissions.
type ContactRepository interface {
	// Create persists a new submission.
	Create(ctx context.Context, contact *entity.ContactForm) error

	// UpdateStatus updates the triage status of a submission.
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*entity.ContactForm, error)

	// Delete removes a submission by ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns all submissions, newest first.
	List(ctx context.Context) ([]*entity.ContactForm, error)
}
