package gmail

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	gmail "google.golang.org/api/gmail/v1"
)

func TestBuildSearchQuery(t *testing.T) {
	tests := []struct {
		name         string
		lookbackDays int
		contains     []string
	}{
		{
			name:         "default lookback",
			lookbackDays: 1,
			contains:     []string{"newer_than:1d"},
		},
		{
			name:         "two day lookback",
			lookbackDays: 2,
			contains:     []string{"newer_than:2d"},
		},
		{
			name:         "large lookback",
			lookbackDays: 30,
			contains:     []string{"newer_than:30d"},
		},
		{
			name:         "zero falls back to one day",
			lookbackDays: 0,
			contains:     []string{"newer_than:1d"},
		},
		{
			name:         "negative falls back to one day",
			lookbackDays: -5,
			contains:     []string{"newer_than:1d"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := BuildSearchQuery(tt.lookbackDays)

			for _, want := range tt.contains {
				assert.Contains(t, query, want)
			}

			// Every query restricts to unread primary-inbox mail and
			// excludes the automated-sender block list.
			assert.Contains(t, query, "is:unread")
			assert.Contains(t, query, "in:inbox")
			assert.Contains(t, query, "category:primary")
			assert.Contains(t, query, "-from:no-reply")
			assert.Contains(t, query, "-from:noreply")
			assert.Contains(t, query, `-subject:"security alert"`)
			assert.Contains(t, query, `-subject:"sign-in"`)
		})
	}
}

func TestIsAutomated(t *testing.T) {
	tests := []struct {
		name     string
		headers  []*gmail.MessagePartHeader
		expected bool
	}{
		{
			name: "list-unsubscribe header",
			headers: []*gmail.MessagePartHeader{
				{Name: "List-Unsubscribe", Value: "<mailto:unsub@example.com>"},
			},
			expected: true,
		},
		{
			name: "lowercase list-unsubscribe",
			headers: []*gmail.MessagePartHeader{
				{Name: "list-unsubscribe", Value: "<https://example.com/unsub>"},
			},
			expected: true,
		},
		{
			name: "uppercase auto-submitted",
			headers: []*gmail.MessagePartHeader{
				{Name: "AUTO-SUBMITTED", Value: "auto-generated"},
			},
			expected: true,
		},
		{
			name: "precedence bulk",
			headers: []*gmail.MessagePartHeader{
				{Name: "Precedence", Value: "bulk"},
			},
			expected: true,
		},
		{
			name: "automation header among normal headers",
			headers: []*gmail.MessagePartHeader{
				{Name: "From", Value: "alice@example.com"},
				{Name: "Subject", Value: "Weekly digest"},
				{Name: "List-Unsubscribe", Value: "<mailto:unsub@example.com>"},
			},
			expected: true,
		},
		{
			name: "normal personal email",
			headers: []*gmail.MessagePartHeader{
				{Name: "From", Value: "alice@example.com"},
				{Name: "To", Value: "me@example.com"},
				{Name: "Subject", Value: "Lunch tomorrow?"},
			},
			expected: false,
		},
		{
			name:     "no headers",
			headers:  nil,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsAutomated(tt.headers))
		})
	}
}

func TestSubjectOrDefault(t *testing.T) {
	tests := []struct {
		name     string
		headers  []*gmail.MessagePartHeader
		expected string
	}{
		{
			name: "subject present",
			headers: []*gmail.MessagePartHeader{
				{Name: "Subject", Value: "Re: Invoice"},
			},
			expected: "Re: Invoice",
		},
		{
			name: "subject header case-insensitive",
			headers: []*gmail.MessagePartHeader{
				{Name: "subject", Value: "hello"},
			},
			expected: "hello",
		},
		{
			name: "missing subject",
			headers: []*gmail.MessagePartHeader{
				{Name: "From", Value: "alice@example.com"},
			},
			expected: "(no subject)",
		},
		{
			name:     "no headers",
			headers:  nil,
			expected: "(no subject)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, subjectOrDefault(tt.headers))
		})
	}
}

func TestReplySubject(t *testing.T) {
	tests := []struct {
		name     string
		subject  string
		expected string
	}{
		{name: "plain subject", subject: "Invoice", expected: "Re: Invoice"},
		{name: "already a reply", subject: "Re: Invoice", expected: "Re: Invoice"},
		{name: "lowercase reply prefix", subject: "re: invoice", expected: "re: invoice"},
		{name: "no subject placeholder", subject: "(no subject)", expected: "Re: (no subject)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, replySubject(tt.subject))
		})
	}
}

func TestBuildReplyMessage(t *testing.T) {
	raw := buildReplyMessage("alice@example.com", "Re: Invoice", "<msg-123@example.com>", "Confirmed, thank you.")

	assert.True(t, strings.HasPrefix(raw, "To: alice@example.com\r\n"))
	assert.Contains(t, raw, "In-Reply-To: <msg-123@example.com>\r\n")
	assert.Contains(t, raw, "References: <msg-123@example.com>\r\n")
	assert.Contains(t, raw, "Content-Type: text/plain; charset=\"UTF-8\"\r\n\r\n")
	assert.Contains(t, raw, "Confirmed, thank you.")
}

func TestBuildReplyMessageWithoutMessageID(t *testing.T) {
	raw := buildReplyMessage("alice@example.com", "Re: Invoice", "", "Hi.")

	assert.NotContains(t, raw, "In-Reply-To")
	assert.NotContains(t, raw, "References")
}
