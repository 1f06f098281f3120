package service

import (
	"fmt"
	"time"
)

// BookingEmailData carries the fields rendered into booking emails.
type BookingEmailData struct {
	EventTitle  string
	HostName    string
	GuestName   string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string
	MeetingLink string
}

func formatInZone(t time.Time, tz string) string {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		loc = time.UTC
	}
	return t.In(loc).Format("Mon, 02 Jan 2006 15:04 (MST)")
}

// BuildHostConfirmationEmail renders the email sent to the meeting host.
func BuildHostConfirmationEmail(data BookingEmailData) (subject, body string) {
	subject = fmt.Sprintf("New booking: %s with %s", data.EventTitle, data.GuestName)
	body = fmt.Sprintf(`<p>Hi %s,</p>
<p><strong>%s</strong> booked <strong>%s</strong>.</p>
<p>When: %s &ndash; %s</p>
%s
<p>This meeting was scheduled through MeetEase.</p>`,
		data.HostName,
		data.GuestName,
		data.EventTitle,
		formatInZone(data.StartTime, data.Timezone),
		formatInZone(data.EndTime, data.Timezone),
		meetingLinkBlock(data.MeetingLink),
	)
	return subject, body
}

// BuildGuestConfirmationEmail renders the email sent to the invitee.
func BuildGuestConfirmationEmail(data BookingEmailData) (subject, body string) {
	subject = fmt.Sprintf("Confirmed: %s with %s", data.EventTitle, data.HostName)
	body = fmt.Sprintf(`<p>Hi %s,</p>
<p>Your meeting <strong>%s</strong> with %s is confirmed.</p>
<p>When: %s &ndash; %s</p>
%s
<p>This meeting was scheduled through MeetEase.</p>`,
		data.GuestName,
		data.EventTitle,
		data.HostName,
		formatInZone(data.StartTime, data.Timezone),
		formatInZone(data.EndTime, data.Timezone),
		meetingLinkBlock(data.MeetingLink),
	)
	return subject, body
}

// BuildCancellationEmail renders the email sent when a meeting is cancelled.
func BuildCancellationEmail(data BookingEmailData, recipientName string) (subject, body string) {
	subject = fmt.Sprintf("Cancelled: %s", data.EventTitle)
	body = fmt.Sprintf(`<p>Hi %s,</p>
<p>The meeting <strong>%s</strong> scheduled for %s has been cancelled.</p>`,
		recipientName,
		data.EventTitle,
		formatInZone(data.StartTime, data.Timezone),
	)
	return subject, body
}

func meetingLinkBlock(link string) string {
	if link == "" {
		return ""
	}
	return fmt.Sprintf(`<p>Join: <a href="%s">%s</a></p>`, link, link)
}
