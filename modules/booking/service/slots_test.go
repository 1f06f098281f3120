package service

import (
	"testing"
	"time"

	"meetease/core/errors"
	calendarDto "meetease/modules/calendar/dto"
)

func utcWindow(start, end string) *AvailabilityWindow {
	return &AvailabilityWindow{StartTime: start, EndTime: end, Timezone: "UTC"}
}

func mustSlots(t *testing.T, date, tz string, w *AvailabilityWindow, dur int, busy []calendarDto.BusyInterval, now time.Time) []string {
	t.Helper()
	slots, appErr := ComputeAvailableSlots(date, tz, w, dur, busy, now)
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	return slots
}

func contains(slots []string, want string) bool {
	for _, s := range slots {
		if s == want {
			return true
		}
	}
	return false
}

func TestFullWindowNoBusyIntervals(t *testing.T) {
	now := time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)
	slots := mustSlots(t, "2030-06-10", "", utcWindow("09:00", "17:00"), 30, nil, now)

	if len(slots) != 16 {
		t.Fatalf("expected 16 slots, got %d: %v", len(slots), slots)
	}
	if slots[0] != "09:00" {
		t.Errorf("first slot = %q, want 09:00", slots[0])
	}
	if slots[len(slots)-1] != "16:30" {
		t.Errorf("last slot = %q, want 16:30", slots[len(slots)-1])
	}
}

func TestBusyIntervalBlocksContainedStarts(t *testing.T) {
	now := time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)
	busy := []calendarDto.BusyInterval{
		{
			Start: time.Date(2030, 6, 10, 10, 0, 0, 0, time.UTC),
			End:   time.Date(2030, 6, 10, 11, 0, 0, 0, time.UTC),
		},
	}
	slots := mustSlots(t, "2030-06-10", "", utcWindow("09:00", "17:00"), 30, busy, now)

	for _, gone := range []string{"10:00", "10:30"} {
		if contains(slots, gone) {
			t.Errorf("slot %s should be blocked", gone)
		}
	}
	for _, kept := range []string{"09:30", "11:00"} {
		if !contains(slots, kept) {
			t.Errorf("slot %s should be available", kept)
		}
	}
}

func TestBusyIntervalIsHalfOpen(t *testing.T) {
	now := time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)
	busy := []calendarDto.BusyInterval{
		{
			Start: time.Date(2030, 6, 10, 9, 0, 0, 0, time.UTC),
			End:   time.Date(2030, 6, 10, 9, 30, 0, 0, time.UTC),
		},
	}
	slots := mustSlots(t, "2030-06-10", "", utcWindow("09:00", "11:00"), 30, busy, now)

	if contains(slots, "09:00") {
		t.Error("slot starting inside the busy interval should be blocked")
	}
	// The busy end is exclusive, so a slot starting exactly there is free.
	if !contains(slots, "09:30") {
		t.Error("slot starting at the busy interval's end should be available")
	}
}

func TestTodayDropsElapsedSlots(t *testing.T) {
	now := time.Date(2030, 6, 10, 14, 10, 0, 0, time.UTC)
	slots := mustSlots(t, "2030-06-10", "", utcWindow("09:00", "17:00"), 30, nil, now)

	if len(slots) == 0 {
		t.Fatal("expected remaining slots for today")
	}
	if slots[0] != "14:30" {
		t.Errorf("first slot = %q, want 14:30", slots[0])
	}
	if contains(slots, "14:00") {
		t.Error("slot at or before the current time should be dropped")
	}
}

func TestRequestTimezoneReprojection(t *testing.T) {
	window := &AvailabilityWindow{StartTime: "09:00", EndTime: "10:00", Timezone: "Asia/Kathmandu"}
	now := time.Date(2029, 12, 1, 12, 0, 0, 0, time.UTC)

	// January: Sydney observes DST (UTC+11), Kathmandu is UTC+5:45.
	slots := mustSlots(t, "2030-01-15", "Australia/Sydney", window, 30, nil, now)
	if len(slots) != 2 {
		t.Fatalf("expected 2 slots, got %v", slots)
	}
	if slots[0] != "14:15" || slots[1] != "14:45" {
		t.Errorf("January conversion = %v, want [14:15 14:45]", slots)
	}

	// July: Sydney is on standard time (UTC+10).
	slots = mustSlots(t, "2030-07-15", "Australia/Sydney", window, 30, nil, now)
	if slots[0] != "13:15" {
		t.Errorf("July conversion first slot = %q, want 13:15", slots[0])
	}
}

func TestPastDateReturnsEmpty(t *testing.T) {
	now := time.Date(2030, 6, 10, 0, 0, 0, 0, time.UTC)
	busy := []calendarDto.BusyInterval{}
	slots := mustSlots(t, "2030-06-09", "", utcWindow("09:00", "17:00"), 30, busy, now)

	if len(slots) != 0 {
		t.Errorf("expected no slots for a past date, got %v", slots)
	}
}

func TestNoAvailabilityWindowReturnsEmpty(t *testing.T) {
	now := time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)
	slots := mustSlots(t, "2030-06-10", "", nil, 30, nil, now)

	if len(slots) != 0 {
		t.Errorf("expected no slots without an availability window, got %v", slots)
	}
}

func TestGridAnchoredAtWindowStart(t *testing.T) {
	now := time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)
	slots := mustSlots(t, "2030-06-10", "", utcWindow("09:05", "11:05"), 30, nil, now)

	want := []string{"09:05", "09:35", "10:05", "10:35"}
	if len(slots) != len(want) {
		t.Fatalf("expected %d slots, got %v", len(want), slots)
	}
	for i, w := range want {
		if slots[i] != w {
			t.Errorf("slots[%d] = %q, want %q", i, slots[i], w)
		}
	}
}

func TestWindowEndIsExclusive(t *testing.T) {
	now := time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)
	slots := mustSlots(t, "2030-06-10", "", utcWindow("09:00", "10:00"), 30, nil, now)

	if !contains(slots, "09:30") {
		t.Error("slot at windowEnd minus duration should be included")
	}
	if contains(slots, "10:00") {
		t.Error("slot starting at windowEnd should never be offered")
	}
}

func TestSlotCountMatchesWindowDivision(t *testing.T) {
	now := time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		start, end string
		duration   int
		want       int
	}{
		{"09:00", "17:00", 30, 16},
		{"09:00", "17:00", 60, 8},
		{"09:05", "10:00", 30, 2},
		{"09:00", "09:45", 30, 2},
		{"09:00", "09:30", 45, 1},
	}

	for _, tc := range cases {
		slots := mustSlots(t, "2030-06-10", "", utcWindow(tc.start, tc.end), tc.duration, nil, now)
		if len(slots) != tc.want {
			t.Errorf("window %s-%s dur %d: got %d slots, want %d",
				tc.start, tc.end, tc.duration, len(slots), tc.want)
		}
	}
}

func TestSlotsStrictlyIncreasing(t *testing.T) {
	now := time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)
	busy := []calendarDto.BusyInterval{
		{
			Start: time.Date(2030, 6, 10, 11, 0, 0, 0, time.UTC),
			End:   time.Date(2030, 6, 10, 12, 30, 0, 0, time.UTC),
		},
	}
	candidates, appErr := ComputeSlotCandidates("2030-06-10", "", utcWindow("08:00", "18:00"), 25, busy, now)
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}

	for i := 1; i < len(candidates); i++ {
		if !candidates[i].Start.After(candidates[i-1].Start) {
			t.Fatalf("candidates not strictly increasing at %d: %v then %v",
				i, candidates[i-1].Start, candidates[i].Start)
		}
	}
}

func TestZeroDurationDefaultsToThirtyMinutes(t *testing.T) {
	now := time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)
	slots := mustSlots(t, "2030-06-10", "", utcWindow("09:00", "10:00"), 0, nil, now)

	if len(slots) != 2 {
		t.Fatalf("expected default 30-minute grid with 2 slots, got %v", slots)
	}
}

func TestMalformedInputsFailWithInvalidInput(t *testing.T) {
	now := time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		date   string
		tz     string
		window *AvailabilityWindow
	}{
		{"bad date", "10-06-2030", "", utcWindow("09:00", "17:00")},
		{"bad window start", "2030-06-10", "", utcWindow("9am", "17:00")},
		{"bad window timezone", "2030-06-10", "", &AvailabilityWindow{StartTime: "09:00", EndTime: "17:00", Timezone: "Mars/Olympus"}},
		{"bad request timezone", "2030-06-10", "Mars/Olympus", utcWindow("09:00", "17:00")},
	}

	for _, tc := range cases {
		_, appErr := ComputeAvailableSlots(tc.date, tc.tz, tc.window, 30, nil, now)
		if appErr == nil {
			t.Errorf("%s: expected error", tc.name)
			continue
		}
		if appErr.Code != errors.ErrInvalidInput {
			t.Errorf("%s: code = %v, want %v", tc.name, appErr.Code, errors.ErrInvalidInput)
		}
	}
}
