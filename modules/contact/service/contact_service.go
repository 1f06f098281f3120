package service

import (
	"context"
	"strings"

	"meetease/core/errors"
	"meetease/core/logger"
	"meetease/core/params"
	"meetease/core/utils"
	"meetease/modules/contact/dto"
	"meetease/modules/contact/entity"
	"meetease/modules/contact/repository"

	"github.com/google/uuid"
)

type ContactServiceInterface interface {
	RecordBooking(ctx context.Context, userID uuid.UUID, name, email string) (*entity.Contact, *errors.AppError)
	GetByID(ctx context.Context, id, userID uuid.UUID) (*dto.ContactResponse, *errors.AppError)
	List(ctx context.Context, userID uuid.UUID, p params.QueryParams) (*dto.ContactListResponse, *errors.AppError)
	Update(ctx context.Context, id, userID uuid.UUID, req *dto.UpdateContactRequest) (*dto.ContactResponse, *errors.AppError)
	Delete(ctx context.Context, id, userID uuid.UUID) *errors.AppError
}

type ContactService struct {
	contactRepo repository.ContactRepositoryInterface
}

func NewContactService(repo repository.ContactRepositoryInterface) *ContactService {
	return &ContactService{contactRepo: repo}
}

// RecordBooking upserts the invitee as a contact of the host. Called by the
// booking flow every time a meeting is scheduled.
func (s *ContactService) RecordBooking(ctx context.Context, userID uuid.UUID, name, email string) (*entity.Contact, *errors.AppError) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !utils.IsValidEmail(email) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid contact email", nil)
	}

	contact := &entity.Contact{
		UserID: userID,
		Name:   strings.TrimSpace(name),
		Email:  email,
	}
	saved, err := s.contactRepo.UpsertByEmail(ctx, contact)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "Failed to save contact", err)
	}
	return saved, nil
}

func (s *ContactService) GetByID(ctx context.Context, id, userID uuid.UUID) (*dto.ContactResponse, *errors.AppError) {
	contact, err := s.contactRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to get contact", err)
	}
	if contact == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Contact not found", nil)
	}
	if contact.UserID != userID {
		return nil, errors.NewAppError(errors.ErrForbidden, "Contact belongs to another user", nil)
	}
	return dto.ToContactResponse(contact), nil
}

func (s *ContactService) List(ctx context.Context, userID uuid.UUID, p params.QueryParams) (*dto.ContactListResponse, *errors.AppError) {
	result, err := s.contactRepo.ListByUser(ctx, userID, p)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to list contacts", err)
	}
	return dto.ToContactListResponse(result), nil
}

func (s *ContactService) Update(ctx context.Context, id, userID uuid.UUID, req *dto.UpdateContactRequest) (*dto.ContactResponse, *errors.AppError) {
	contact, err := s.contactRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to get contact", err)
	}
	if contact == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Contact not found", nil)
	}
	if contact.UserID != userID {
		return nil, errors.NewAppError(errors.ErrForbidden, "Contact belongs to another user", nil)
	}

	if req.Name != nil {
		contact.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if !utils.IsValidEmail(email) {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid contact email", nil)
		}
		contact.Email = email
	}
	if req.Notes != nil {
		contact.Notes = req.Notes
	}

	if err := s.contactRepo.Update(ctx, contact); err != nil {
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "Failed to update contact", err)
	}

	logger.Info("ContactService:Update:Updated", "contactID", contact.ID)
	return dto.ToContactResponse(contact), nil
}

func (s *ContactService) Delete(ctx context.Context, id, userID uuid.UUID) *errors.AppError {
	contact, err := s.contactRepo.GetByID(ctx, id)
	if err != nil {
		return errors.NewAppError(errors.ErrGetFailed, "Failed to get contact", err)
	}
	if contact == nil {
		return errors.NewAppError(errors.ErrNotFound, "Contact not found", nil)
	}
	if contact.UserID != userID {
		return errors.NewAppError(errors.ErrForbidden, "Contact belongs to another user", nil)
	}

	if err := s.contactRepo.Delete(ctx, id); err != nil {
		return errors.NewAppError(errors.ErrDeleteFailed, "Failed to delete contact", err)
	}
	return nil
}
