package service

import (
	"context"
	"testing"

	"meetease/core/errors"
	"meetease/core/params"
	"meetease/modules/contact/entity"

	"github.com/google/uuid"
)

type fakeContactRepo struct {
	upserted *entity.Contact
	byID     map[uuid.UUID]*entity.Contact
	deleted  bool
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{byID: map[uuid.UUID]*entity.Contact{}}
}

func (f *fakeContactRepo) UpsertByEmail(ctx context.Context, c *entity.Contact) (*entity.Contact, error) {
	f.upserted = c
	saved := *c
	saved.ID = uuid.New()
	return &saved, nil
}

func (f *fakeContactRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Contact, error) {
	return f.byID[id], nil
}

func (f *fakeContactRepo) ListByUser(ctx context.Context, userID uuid.UUID, p params.QueryParams) (*entity.PaginatedContactEntity, error) {
	return &entity.PaginatedContactEntity{}, nil
}

func (f *fakeContactRepo) Update(ctx context.Context, c *entity.Contact) error {
	return nil
}

func (f *fakeContactRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.deleted = true
	return nil
}

func TestRecordBookingNormalizesEmail(t *testing.T) {
	repo := newFakeContactRepo()
	svc := NewContactService(repo)
	userID := uuid.New()

	contact, appErr := svc.RecordBooking(context.Background(), userID, "  Gia Guest ", "  Gia.Guest@Example.COM ")
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if repo.upserted.Email != "gia.guest@example.com" {
		t.Errorf("email = %q, want lowercased trimmed", repo.upserted.Email)
	}
	if repo.upserted.Name != "Gia Guest" {
		t.Errorf("name = %q, want trimmed", repo.upserted.Name)
	}
	if contact.UserID != userID {
		t.Errorf("user id = %s, want %s", contact.UserID, userID)
	}
}

func TestRecordBookingRejectsInvalidEmail(t *testing.T) {
	repo := newFakeContactRepo()
	svc := NewContactService(repo)

	_, appErr := svc.RecordBooking(context.Background(), uuid.New(), "Gia", "not-an-email")
	if appErr == nil {
		t.Fatal("expected error, got nil")
	}
	if appErr.Code != errors.ErrInvalidInput {
		t.Errorf("code = %s, want %s", appErr.Code, errors.ErrInvalidInput)
	}
	if repo.upserted != nil {
		t.Error("repository should not be called for invalid email")
	}
}

func TestContactOwnershipIsEnforced(t *testing.T) {
	repo := newFakeContactRepo()
	owner := uuid.New()
	id := uuid.New()
	repo.byID[id] = &entity.Contact{UserID: owner, Name: "Gia", Email: "gia@example.com"}
	svc := NewContactService(repo)

	if _, appErr := svc.GetByID(context.Background(), id, uuid.New()); appErr == nil || appErr.Code != errors.ErrForbidden {
		t.Errorf("GetByID: expected forbidden, got %v", appErr)
	}
	if appErr := svc.Delete(context.Background(), id, uuid.New()); appErr == nil || appErr.Code != errors.ErrForbidden {
		t.Errorf("Delete: expected forbidden, got %v", appErr)
	}
	if repo.deleted {
		t.Error("repository delete should not run for foreign owner")
	}

	if appErr := svc.Delete(context.Background(), id, owner); appErr != nil {
		t.Errorf("Delete by owner: unexpected error %v", appErr)
	}
	if !repo.deleted {
		t.Error("repository delete was not called for owner")
	}
}
