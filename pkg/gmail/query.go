package gmail

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"

	"google.golang.org/api/gmail/v1"
)

// maxCandidates caps the number of threads surfaced per scan.
const maxCandidates = 10

// defaultSubject substitutes for a missing Subject header so candidates,
// reply subjects and log entries stay readable.
const defaultSubject = "(no subject)"

// Block-listed terms for the search query. These catch the bulk of automated
// mail before the per-thread header check runs.
var (
	blockedSenderTerms  = []string{"no-reply", "noreply"}
	blockedSubjectTerms = []string{"security alert", "sign-in"}
)

// automationHeaders mark a thread as machine-generated. Presence of any of
// these on the first message excludes the thread, whatever the search query
// matched (RFC 3834, RFC 2369, Precedence: bulk/list/junk).
var automationHeaders = []string{"Auto-Submitted", "List-Unsubscribe", "Precedence"}

// BuildSearchQuery composes the Gmail search query for one scan: unread
// primary-inbox threads within the lookback window, minus the block list.
func BuildSearchQuery(lookbackDays int) string {
	if lookbackDays <= 0 {
		lookbackDays = 1
	}

	terms := []string{
		"in:inbox",
		"is:unread",
		"category:primary",
		fmt.Sprintf("newer_than:%dd", lookbackDays),
	}
	for _, t := range blockedSenderTerms {
		terms = append(terms, "-from:"+t)
	}
	for _, t := range blockedSubjectTerms {
		terms = append(terms, fmt.Sprintf("-subject:%q", t))
	}

	return strings.Join(terms, " ")
}

// IsAutomated reports whether any header names a known automation signal.
// Header names are matched case-insensitively.
func IsAutomated(headers []*gmail.MessagePartHeader) bool {
	for _, h := range headers {
		for _, name := range automationHeaders {
			if strings.EqualFold(h.Name, name) {
				return true
			}
		}
	}
	return false
}

func headerValue(headers []*gmail.MessagePartHeader, name string) string {
	for _, h := range headers {
		if strings.EqualFold(h.Name, name) {
			return h.Value
		}
	}
	return ""
}

func subjectOrDefault(headers []*gmail.MessagePartHeader) string {
	if subject := headerValue(headers, "Subject"); subject != "" {
		return subject
	}
	return defaultSubject
}

func replySubject(subject string) string {
	if strings.HasPrefix(strings.ToLower(subject), "re:") {
		return subject
	}
	return "Re: " + subject
}

// buildReplyMessage assembles the raw RFC 822 reply. In-Reply-To/References
// keep threading intact for clients that ignore the draft's thread id.
func buildReplyMessage(to, subject, inReplyTo, body string) string {
	var msg bytes.Buffer

	msg.WriteString(fmt.Sprintf("To: %s\r\n", to))
	// Encode subject to handle non-ASCII characters (RFC 2047)
	encodedSubject := fmt.Sprintf("=?utf-8?B?%s?=", base64.StdEncoding.EncodeToString([]byte(subject)))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", encodedSubject))
	if inReplyTo != "" {
		msg.WriteString(fmt.Sprintf("In-Reply-To: %s\r\n", inReplyTo))
		msg.WriteString(fmt.Sprintf("References: %s\r\n", inReplyTo))
	}
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n\r\n")
	msg.WriteString(body)
	msg.WriteString("\r\n")

	return msg.String()
}
