package service

import (
	"context"
	"testing"

	"meetease/core/errors"
	"meetease/modules/availability/dto"
	"meetease/modules/availability/entity"

	"github.com/google/uuid"
)

type fakeAvailabilityRepo struct {
	upserted *entity.Availability
	items    []entity.Availability
	deleted  bool
}

func (f *fakeAvailabilityRepo) Upsert(ctx context.Context, a *entity.Availability) (*entity.Availability, error) {
	f.upserted = a
	saved := *a
	saved.ID = uuid.New()
	return &saved, nil
}

func (f *fakeAvailabilityRepo) GetByUserAndDay(ctx context.Context, userID uuid.UUID, dayOfWeek int) (*entity.Availability, error) {
	return nil, nil
}

func (f *fakeAvailabilityRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Availability, error) {
	return f.items, nil
}

func (f *fakeAvailabilityRepo) Delete(ctx context.Context, userID uuid.UUID, dayOfWeek int) error {
	f.deleted = true
	return nil
}

func TestUpsertRejectsInvalidWindows(t *testing.T) {
	svc := NewAvailabilityService(&fakeAvailabilityRepo{})
	userID := uuid.New()

	cases := []struct {
		name string
		req  dto.UpsertAvailabilityRequest
	}{
		{"day too low", dto.UpsertAvailabilityRequest{DayOfWeek: -1, StartTime: "09:00", EndTime: "17:00", Timezone: "UTC"}},
		{"day too high", dto.UpsertAvailabilityRequest{DayOfWeek: 7, StartTime: "09:00", EndTime: "17:00", Timezone: "UTC"}},
		{"bad start clock", dto.UpsertAvailabilityRequest{DayOfWeek: 1, StartTime: "9am", EndTime: "17:00", Timezone: "UTC"}},
		{"bad end clock", dto.UpsertAvailabilityRequest{DayOfWeek: 1, StartTime: "09:00", EndTime: "25:00", Timezone: "UTC"}},
		{"start equals end", dto.UpsertAvailabilityRequest{DayOfWeek: 1, StartTime: "09:00", EndTime: "09:00", Timezone: "UTC"}},
		{"start after end", dto.UpsertAvailabilityRequest{DayOfWeek: 1, StartTime: "17:00", EndTime: "09:00", Timezone: "UTC"}},
		{"unknown timezone", dto.UpsertAvailabilityRequest{DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00", Timezone: "Mars/Olympus"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := tc.req
			_, appErr := svc.Upsert(context.Background(), userID, &req)
			if appErr == nil {
				t.Fatal("expected error, got nil")
			}
			if appErr.Code != errors.ErrInvalidInput {
				t.Errorf("code = %s, want %s", appErr.Code, errors.ErrInvalidInput)
			}
		})
	}
}

func TestUpsertSavesValidWindow(t *testing.T) {
	repo := &fakeAvailabilityRepo{}
	svc := NewAvailabilityService(repo)
	userID := uuid.New()

	resp, appErr := svc.Upsert(context.Background(), userID, &dto.UpsertAvailabilityRequest{
		DayOfWeek: 2,
		StartTime: "09:00",
		EndTime:   "17:00",
		Timezone:  "Asia/Kathmandu",
	})
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if repo.upserted == nil {
		t.Fatal("repository was not called")
	}
	if repo.upserted.UserID != userID {
		t.Errorf("user id = %s, want %s", repo.upserted.UserID, userID)
	}
	if resp.DayOfWeek != 2 || resp.StartTime != "09:00" || resp.EndTime != "17:00" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestDeleteValidatesDayOfWeek(t *testing.T) {
	repo := &fakeAvailabilityRepo{}
	svc := NewAvailabilityService(repo)

	if appErr := svc.Delete(context.Background(), uuid.New(), 9); appErr == nil {
		t.Fatal("expected error for day 9, got nil")
	}
	if repo.deleted {
		t.Error("repository delete should not run on invalid input")
	}

	if appErr := svc.Delete(context.Background(), uuid.New(), 0); appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if !repo.deleted {
		t.Error("repository delete was not called")
	}
}

func TestParseClock(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:05", 545, false},
		{"23:59", 1439, false},
		{"09:00:00", 540, false},
		{"24:00", 0, true},
		{"9:00pm", 0, true},
		{"", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseClock(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseClock(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
