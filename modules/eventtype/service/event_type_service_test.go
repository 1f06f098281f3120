package service

import (
	"context"
	"strings"
	"testing"

	"meetease/core/errors"
	"meetease/modules/eventtype/dto"
	"meetease/modules/eventtype/entity"

	"github.com/google/uuid"
)

type fakeEventTypeRepo struct {
	takenSlugs map[string]bool
	byID       map[uuid.UUID]*entity.EventType
	created    *entity.EventType
	updated    *entity.EventType
	deletedID  uuid.UUID
}

func newFakeEventTypeRepo() *fakeEventTypeRepo {
	return &fakeEventTypeRepo{
		takenSlugs: map[string]bool{},
		byID:       map[uuid.UUID]*entity.EventType{},
	}
}

func (f *fakeEventTypeRepo) Create(ctx context.Context, et *entity.EventType) (*entity.EventType, error) {
	created := *et
	created.ID = uuid.New()
	f.created = &created
	return &created, nil
}

func (f *fakeEventTypeRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.EventType, error) {
	return f.byID[id], nil
}

func (f *fakeEventTypeRepo) GetBySlug(ctx context.Context, slug string) (*entity.EventType, error) {
	return nil, nil
}

func (f *fakeEventTypeRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.EventType, error) {
	return nil, nil
}

func (f *fakeEventTypeRepo) Update(ctx context.Context, et *entity.EventType) error {
	f.updated = et
	return nil
}

func (f *fakeEventTypeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.deletedID = id
	return nil
}

func (f *fakeEventTypeRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	return f.takenSlugs[slug], nil
}

func TestCreateDerivesSlugFromTitle(t *testing.T) {
	repo := newFakeEventTypeRepo()
	svc := NewEventTypeService(repo)

	resp, appErr := svc.Create(context.Background(), uuid.New(), &dto.CreateEventTypeRequest{
		Title:           "Intro Call (30 min)",
		DurationMinutes: 30,
	})
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if resp.Slug != "intro-call-30-min" {
		t.Errorf("slug = %q, want %q", resp.Slug, "intro-call-30-min")
	}
}

func TestCreateAppendsSuffixWhenSlugTaken(t *testing.T) {
	repo := newFakeEventTypeRepo()
	repo.takenSlugs["intro-call"] = true
	svc := NewEventTypeService(repo)

	resp, appErr := svc.Create(context.Background(), uuid.New(), &dto.CreateEventTypeRequest{
		Title:           "Intro Call",
		DurationMinutes: 30,
	})
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if !strings.HasPrefix(resp.Slug, "intro-call-") {
		t.Errorf("slug = %q, want prefix %q", resp.Slug, "intro-call-")
	}
	if resp.Slug == "intro-call" {
		t.Error("slug collided with existing slug")
	}
}

func TestCreateDefaultsDuration(t *testing.T) {
	repo := newFakeEventTypeRepo()
	svc := NewEventTypeService(repo)

	resp, appErr := svc.Create(context.Background(), uuid.New(), &dto.CreateEventTypeRequest{
		Title: "Quick Chat",
	})
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if resp.DurationMinutes != 30 {
		t.Errorf("duration = %d, want 30", resp.DurationMinutes)
	}
}

func TestCreateRequiresTitle(t *testing.T) {
	svc := NewEventTypeService(newFakeEventTypeRepo())

	_, appErr := svc.Create(context.Background(), uuid.New(), &dto.CreateEventTypeRequest{})
	if appErr == nil {
		t.Fatal("expected error, got nil")
	}
	if appErr.Code != errors.ErrInvalidInput {
		t.Errorf("code = %s, want %s", appErr.Code, errors.ErrInvalidInput)
	}
}

func TestUpdateRejectsForeignOwner(t *testing.T) {
	repo := newFakeEventTypeRepo()
	owner := uuid.New()
	id := uuid.New()
	repo.byID[id] = &entity.EventType{UserID: owner, Title: "Intro Call", Slug: "intro-call", DurationMinutes: 30}
	svc := NewEventTypeService(repo)

	_, appErr := svc.Update(context.Background(), id, uuid.New(), &dto.UpdateEventTypeRequest{Title: "Stolen"})
	if appErr == nil {
		t.Fatal("expected error, got nil")
	}
	if appErr.Code != errors.ErrForbidden {
		t.Errorf("code = %s, want %s", appErr.Code, errors.ErrForbidden)
	}
	if repo.updated != nil {
		t.Error("repository update should not run for foreign owner")
	}
}

func TestDeleteRejectsForeignOwner(t *testing.T) {
	repo := newFakeEventTypeRepo()
	owner := uuid.New()
	id := uuid.New()
	repo.byID[id] = &entity.EventType{UserID: owner, Title: "Intro Call", Slug: "intro-call", DurationMinutes: 30}
	svc := NewEventTypeService(repo)

	if appErr := svc.Delete(context.Background(), id, uuid.New()); appErr == nil || appErr.Code != errors.ErrForbidden {
		t.Fatalf("expected forbidden, got %v", appErr)
	}
	if appErr := svc.Delete(context.Background(), id, owner); appErr != nil {
		t.Fatalf("unexpected error for owner: %v", appErr)
	}
	if repo.deletedID != id {
		t.Errorf("deleted id = %s, want %s", repo.deletedID, id)
	}
}
