// Package scrub removes PII from untrusted job-description text before it
// is sent to any external collaborator.
package scrub

import "regexp"

// Redaction placeholders. They contain no characters the patterns below
// match, which keeps PII a single pass idempotent.
const (
	emailPlaceholder    = "[email redacted]"
	phonePlaceholder    = "[phone redacted]"
	linkedinPlaceholder = "[linkedin profile redacted]"
	githubPlaceholder   = "[github profile redacted]"
)

// Patterns applied in order. Profile URLs go first so the email pattern
// never eats a partial URL, and generic URLs are deliberately left alone:
// a JD legitimately contains company and application links.
var (
	linkedinPattern = regexp.MustCompile(`https?://(www\.)?linkedin\.com/in/[a-zA-Z0-9_-]+/?`)
	githubPattern   = regexp.MustCompile(`https?://(www\.)?github\.com/[a-zA-Z0-9_-]+/?(\s|$)`)
	emailPattern    = regexp.MustCompile(`[\w.+-]+@[\w.-]+\.\w+`)
	phonePattern    = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
)

// PII replaces emails, phone numbers, and known profile URLs with
// redaction placeholders. Pure and deterministic; PII(PII(s)) == PII(s).
func PII(text string) string {
	text = linkedinPattern.ReplaceAllString(text, linkedinPlaceholder)
	text = githubPattern.ReplaceAllString(text, githubPlaceholder+"$2")
	text = emailPattern.ReplaceAllString(text, emailPlaceholder)
	text = phonePattern.ReplaceAllString(text, phonePlaceholder)
	return text
}
