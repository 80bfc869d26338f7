// Package domain contains the core business logic and entities.
// This package has no external dependencies (only stdlib).
package domain

import (
	"fmt"
	"strings"
	"time"
)

// Content represents a stored content item. The title is the identity:
// two titles differing only in case or space encoding are the same entity.
type Content struct {
	Title         string    `json:"title"`
	Story         string    `json:"story"`
	PublishedDate time.Time `json:"published_date"`
	UserID        string    `json:"user_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NormalizeTitle applies the canonical title form: lower-cased with spaces
// replaced by underscores. Applied before every store or lookup.
func NormalizeTitle(title string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(title)), " ", "_")
}

// publishedDateLayouts are the accepted formats for caller-supplied publish
// dates, tried in order.
var publishedDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"02 Jan 2006",
	"Jan 2, 2006",
}

// ParsePublishedDate parses a free-form publish date string.
func ParsePublishedDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range publishedDateLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized published date %q", value)
}

// NewContent creates a normalized Content from raw import fields.
// The publish date is set once at creation and never updated afterwards.
func NewContent(title, story, publishedDate, userID string) (*Content, error) {
	normalized := NormalizeTitle(title)
	if normalized == "" {
		return nil, fmt.Errorf("title is required")
	}

	ts, err := ParsePublishedDate(publishedDate)
	if err != nil {
		return nil, err
	}

	return &Content{
		Title:         normalized,
		Story:         story,
		PublishedDate: ts,
		UserID:        userID,
	}, nil
}
