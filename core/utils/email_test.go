package utils

import (
	"strings"
	"testing"
)

func TestIsValidEmail(t *testing.T) {
	cases := []struct {
		email string
		want  bool
	}{
		{"guest@example.com", true},
		{"first.last+tag@sub.example.co", true},
		{"", false},
		{"no-at-sign", false},
		{"missing@tld", false},
		{"spaces in@example.com", false},
	}
	for _, tc := range cases {
		if got := IsValidEmail(tc.email); got != tc.want {
			t.Errorf("IsValidEmail(%q) = %v, want %v", tc.email, got, tc.want)
		}
	}
}

func TestBuildEmailMessage(t *testing.T) {
	raw := string(BuildEmailMessage("noreply@meetease.app", EmailMessage{
		To:      []string{"a@example.com", "b@example.com"},
		Subject: "Booking confirmed",
		Body:    "<p>hello</p>",
		IsHTML:  true,
	}))

	for _, want := range []string{
		"From: noreply@meetease.app\r\n",
		"To: a@example.com, b@example.com\r\n",
		"Subject: Booking confirmed\r\n",
		"Content-Type: text/html; charset=utf-8\r\n",
		"<p>hello</p>",
	} {
		if !strings.Contains(raw, want) {
			t.Errorf("message missing %q", want)
		}
	}

	plain := string(BuildEmailMessage("noreply@meetease.app", EmailMessage{
		To:      []string{"a@example.com"},
		Subject: "hi",
		Body:    "hello",
	}))
	if !strings.Contains(plain, "Content-Type: text/plain; charset=utf-8\r\n") {
		t.Error("plain message should use text/plain content type")
	}
}
