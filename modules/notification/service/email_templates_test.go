package service

import (
	"strings"
	"testing"
	"time"
)

func sampleEmailData() BookingEmailData {
	return BookingEmailData{
		EventTitle:  "Intro Call",
		HostName:    "Alex Host",
		GuestName:   "Gia Guest",
		StartTime:   time.Date(2025, 6, 2, 3, 15, 0, 0, time.UTC),
		EndTime:     time.Date(2025, 6, 2, 3, 45, 0, 0, time.UTC),
		Timezone:    "Asia/Kathmandu",
		MeetingLink: "https://meet.google.com/abc-defg-hij",
	}
}

func TestHostConfirmationEmail(t *testing.T) {
	subject, body := BuildHostConfirmationEmail(sampleEmailData())

	if subject != "New booking: Intro Call with Gia Guest" {
		t.Errorf("subject = %q", subject)
	}
	// 03:15 UTC is 09:00 in Kathmandu (+05:45).
	for _, want := range []string{"Alex Host", "Gia Guest", "Intro Call", "09:00", "09:30", "https://meet.google.com/abc-defg-hij"} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestGuestConfirmationEmail(t *testing.T) {
	subject, body := BuildGuestConfirmationEmail(sampleEmailData())

	if subject != "Confirmed: Intro Call with Alex Host" {
		t.Errorf("subject = %q", subject)
	}
	for _, want := range []string{"Gia Guest", "Alex Host", "confirmed", "09:00"} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestMeetingLinkOmittedWhenEmpty(t *testing.T) {
	data := sampleEmailData()
	data.MeetingLink = ""

	_, body := BuildGuestConfirmationEmail(data)
	if strings.Contains(body, "Join:") {
		t.Error("body should not contain a join block without a link")
	}
}

func TestCancellationEmail(t *testing.T) {
	subject, body := BuildCancellationEmail(sampleEmailData(), "Gia Guest")

	if subject != "Cancelled: Intro Call" {
		t.Errorf("subject = %q", subject)
	}
	for _, want := range []string{"Gia Guest", "Intro Call", "cancelled", "09:00"} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestFormatInZoneFallsBackToUTC(t *testing.T) {
	at := time.Date(2025, 6, 2, 3, 15, 0, 0, time.UTC)
	got := formatInZone(at, "Not/AZone")
	if !strings.Contains(got, "03:15") {
		t.Errorf("got %q, want UTC time 03:15", got)
	}
}
