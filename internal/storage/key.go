package storage

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// keyPrefix is where briefs live inside the bucket.
const keyPrefix = "briefs"

var nonSlugChars = regexp.MustCompile(`[^a-z0-9-]+`)

// Slugify normalizes free text into a storage-safe slug: lowercase,
// whitespace and punctuation collapsed to single dashes.
func Slugify(text string) string {
	slug := strings.ToLower(strings.TrimSpace(text))
	slug = nonSlugChars.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		return "brief"
	}
	return slug
}

// NewObjectKey derives a collision-resistant storage key from the upload
// time and company name. The short UUID suffix keeps two uploads in the
// same millisecond for the same company apart.
func NewObjectKey(company string, now time.Time) string {
	suffix := uuid.New().String()[:8]
	return fmt.Sprintf("%s/%d-%s-%s.pdf", keyPrefix, now.UnixMilli(), Slugify(company), suffix)
}

// KeyFromBasename rebuilds a full object key from the basename handed out
// in API routes.
func KeyFromBasename(basename string) string {
	return keyPrefix + "/" + basename
}

// Filename builds the user-facing download filename for a brief.
func Filename(company, role string, now time.Time) string {
	if company == "" {
		company = "company"
	}
	if role == "" {
		role = "role"
	}
	return fmt.Sprintf("whyjosh-%s-%s-%s.pdf", Slugify(company), Slugify(role), now.Format("2006-01-02"))
}
