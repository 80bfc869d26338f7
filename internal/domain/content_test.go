package domain

import (
	"testing"
	"time"
)

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"The Great Gatsby", "the_great_gatsby"},
		{"already_normal", "already_normal"},
		{"  Trimmed Title  ", "trimmed_title"},
		{"MIXED Case Words", "mixed_case_words"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeTitle(tt.in); got != tt.want {
			t.Errorf("NormalizeTitle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParsePublishedDate(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2024-01-03", time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)},
		{"2024-01-03T10:30:00Z", time.Date(2024, 1, 3, 10, 30, 0, 0, time.UTC)},
		{"2024/01/03", time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)},
		{"03 Jan 2024", time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		got, err := ParsePublishedDate(tt.in)
		if err != nil {
			t.Errorf("ParsePublishedDate(%q) returned error: %v", tt.in, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("ParsePublishedDate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParsePublishedDate_Invalid(t *testing.T) {
	for _, in := range []string{"", "not a date", "13/45/2024"} {
		if _, err := ParsePublishedDate(in); err == nil {
			t.Errorf("ParsePublishedDate(%q) expected error, got nil", in)
		}
	}
}

func TestNewContent(t *testing.T) {
	c, err := NewContent("My First Story", "once upon a time", "2024-02-01", "user-1")
	if err != nil {
		t.Fatalf("NewContent returned error: %v", err)
	}
	if c.Title != "my_first_story" {
		t.Errorf("expected normalized title, got %q", c.Title)
	}
	if c.Story != "once upon a time" {
		t.Errorf("unexpected story %q", c.Story)
	}
	if c.UserID != "user-1" {
		t.Errorf("unexpected user id %q", c.UserID)
	}
	if c.PublishedDate.IsZero() {
		t.Error("expected published date to be set")
	}
}

func TestNewContent_Errors(t *testing.T) {
	if _, err := NewContent("", "story", "2024-02-01", ""); err == nil {
		t.Error("expected error for empty title")
	}
	if _, err := NewContent("title", "story", "yesterday-ish", ""); err == nil {
		t.Error("expected error for unparseable date")
	}
}
