package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "sayma/internal/delivery/context"
	"sayma/internal/domain/entity"
	domainerrors "sayma/internal/domain/errors"
	"sayma/internal/domain/repository"
	"sayma/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// contactService implements the ContactUsecase interface.
type contactService struct {
	contactRepo repository.ContactRepository
	logger      *slog.Logger
}

// ContactServiceParams holds dependencies for contactService, injected by Fx.
type ContactServiceParams struct {
	fx.In

	ContactRepo repository.ContactRepository
	Logger      *slog.Logger
}

// NewContactService is the constructor for contactService.
func NewContactService(params ContactServiceParams) usecase.ContactUsecase {
	return &contactService{
		contactRepo: params.ContactRepo,
		logger:      params.Logger,
	}
}

func (srv *contactService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Submit stores a new contact form submission.
func (srv *contactService) Submit(ctx context.Context, input usecase.ContactInput) (*entity.ContactForm, error) {
	name := strings.TrimSpace(input.Name)
	phone := strings.TrimSpace(input.Phone)
	message := strings.TrimSpace(input.Message)

	if name == "" || phone == "" || message == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("name, phone and message are required")
	}

	contact := &entity.ContactForm{
		Name:    name,
		Phone:   phone,
		Email:   normalizeEmail(input.Email),
		Message: message,
	}
	if err := srv.contactRepo.Create(ctx, contact); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Contact form submitted", slog.Any("contactID", contact.ID))

	return contact, nil
}

// List returns all submissions for the back office.
func (srv *contactService) List(ctx context.Context) ([]*entity.ContactForm, error) {
	return srv.contactRepo.List(ctx)
}

// UpdateStatus moves a submission through triage.
func (srv *contactService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*entity.ContactForm, error) {
	switch status {
	case entity.ContactStatusNew, entity.ContactStatusContacted, entity.ContactStatusClosed:
	default:
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown contact status")
	}

	return srv.contactRepo.UpdateStatus(ctx, id, status)
}

// Delete removes a submission.
func (srv *contactService) Delete(ctx context.Context, id uuid.UUID) error {
	return srv.contactRepo.Delete(ctx, id)
}
