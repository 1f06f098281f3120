package service

import (
	"fmt"
	"time"

	"meetease/core/constants"
	"meetease/core/errors"
	availabilityService "meetease/modules/availability/service"
	calendarDto "meetease/modules/calendar/dto"
)

const dateLayout = "2006-01-02"

// AvailabilityWindow is the recurring weekly window slots are generated from.
// StartTime and EndTime are wall-clock "HH:MM" strings in Timezone.
type AvailabilityWindow struct {
	StartTime string
	EndTime   string
	Timezone  string
}

// SlotCandidate is one bookable start: the wall-clock label shown to the
// requester and the concrete instant it denotes on the target date.
type SlotCandidate struct {
	Label string
	Start time.Time
}

// FormatClock renders minutes since midnight as "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ComputeAvailableSlots returns the ordered bookable start times for the
// target date, expressed in requestTimezone when it differs from the window's
// timezone. It is pure: all inputs including the clock are passed in.
func ComputeAvailableSlots(targetDate, requestTimezone string, window *AvailabilityWindow, slotDurationMinutes int, busy []calendarDto.BusyInterval, now time.Time) ([]string, *errors.AppError) {
	candidates, appErr := ComputeSlotCandidates(targetDate, requestTimezone, window, slotDurationMinutes, busy, now)
	if appErr != nil {
		return nil, appErr
	}

	slots := make([]string, 0, len(candidates))
	for _, c := range candidates {
		slots = append(slots, c.Label)
	}
	return slots, nil
}

// ComputeSlotCandidates is the calculator behind ComputeAvailableSlots. The
// booking flow uses the candidate instants to re-validate a requested slot
// before creating the meeting.
func ComputeSlotCandidates(targetDate, requestTimezone string, window *AvailabilityWindow, slotDurationMinutes int, busy []calendarDto.BusyInterval, now time.Time) ([]SlotCandidate, *errors.AppError) {
	date, err := time.Parse(dateLayout, targetDate)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid date "+targetDate+": expected YYYY-MM-DD", err)
	}

	if window == nil {
		return []SlotCandidate{}, nil
	}

	if slotDurationMinutes <= 0 {
		slotDurationMinutes = constants.DefaultSlotDurationMinutes
	}

	loc, err := time.LoadLocation(window.Timezone)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "unknown timezone "+window.Timezone, err)
	}

	// Past dates yield nothing. "Today" is judged in the window's timezone,
	// and the ISO date strings compare lexicographically.
	today := now.In(loc).Format(dateLayout)
	if targetDate < today {
		return []SlotCandidate{}, nil
	}

	windowStart, err := availabilityService.ParseClock(window.StartTime)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, err.Error(), err)
	}
	windowEnd, err := availabilityService.ParseClock(window.EndTime)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, err.Error(), err)
	}

	// Busy intervals are compared as wall-clock minutes of day in the
	// window's timezone, the date the provider reports them under is
	// irrelevant.
	type busyMinutes struct {
		start, end int
	}
	blocked := make([]busyMinutes, 0, len(busy))
	for _, b := range busy {
		bs := b.Start.In(loc)
		be := b.End.In(loc)
		blocked = append(blocked, busyMinutes{
			start: bs.Hour()*60 + bs.Minute(),
			end:   be.Hour()*60 + be.Minute(),
		})
	}

	nowMinutes := -1
	if targetDate == today {
		localNow := now.In(loc)
		nowMinutes = localNow.Hour()*60 + localNow.Minute()
	}

	var reqLoc *time.Location
	if requestTimezone != "" && requestTimezone != window.Timezone {
		reqLoc, err = time.LoadLocation(requestTimezone)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "unknown timezone "+requestTimezone, err)
		}
	}

	year, month, day := date.Date()
	candidates := make([]SlotCandidate, 0)

	// The grid is anchored at windowStart, not midnight, and windowEnd is
	// exclusive.
	for c := windowStart; c < windowEnd; c += slotDurationMinutes {
		if nowMinutes >= 0 && c <= nowMinutes {
			continue
		}

		isBlocked := false
		for _, b := range blocked {
			// A slot is blocked only when its start falls inside the
			// half-open busy interval.
			if b.start <= c && c < b.end {
				isBlocked = true
				break
			}
		}
		if isBlocked {
			continue
		}

		instant := time.Date(year, month, day, c/60, c%60, 0, 0, loc)
		label := FormatClock(c)
		if reqLoc != nil {
			label = instant.In(reqLoc).Format("15:04")
		}
		candidates = append(candidates, SlotCandidate{Label: label, Start: instant})
	}

	return candidates, nil
}
