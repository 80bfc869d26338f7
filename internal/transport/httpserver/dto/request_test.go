package dto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"content-service/internal/validator"
)

func newTestValidator() *validator.Validator {
	return validator.New()
}

// TestUpdateStoryRequest_Validation tests PATCH body validation.
func TestUpdateStoryRequest_Validation(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		name    string
		req     UpdateStoryRequest
		wantErr bool
	}{
		{
			name: "valid story",
			req:  UpdateStoryRequest{Story: "a replacement story"},
		},
		{
			name:    "empty story",
			req:     UpdateStoryRequest{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestCreateContentRequest_Validation tests single-row JSON create validation.
func TestCreateContentRequest_Validation(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		name        string
		req         CreateContentRequest
		expectField string
		expectTag   string
	}{
		{
			name: "valid request",
			req: CreateContentRequest{
				Title:         "A Tale",
				Story:         "once upon a time",
				PublishedDate: "2024-01-01",
			},
		},
		{
			name: "valid with timestamp date",
			req: CreateContentRequest{
				Title:         "A Tale",
				Story:         "once upon a time",
				PublishedDate: "2024-01-01T10:30:00Z",
			},
		},
		{
			name: "missing title",
			req: CreateContentRequest{
				Story:         "once upon a time",
				PublishedDate: "2024-01-01",
			},
			expectField: "title",
			expectTag:   "required",
		},
		{
			name: "title too long",
			req: CreateContentRequest{
				Title:         strings.Repeat("x", 501),
				Story:         "once upon a time",
				PublishedDate: "2024-01-01",
			},
			expectField: "title",
			expectTag:   "max",
		},
		{
			name: "unparseable date",
			req: CreateContentRequest{
				Title:         "A Tale",
				Story:         "once upon a time",
				PublishedDate: "yesterday-ish",
			},
			expectField: "publishedDate",
			expectTag:   "pubdate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)
			if tt.expectField == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			validationErrs, ok := err.(validator.ValidationErrors)
			require.True(t, ok, "expected ValidationErrors type")

			found := false
			for _, ve := range validationErrs {
				if ve.Field == tt.expectField {
					found = true
					assert.Equal(t, tt.expectTag, ve.Tag)
				}
			}
			assert.True(t, found, "expected error for field %s", tt.expectField)
		})
	}
}

// TestValidationErrors_Error tests the Error() method of ValidationErrors.
func TestValidationErrors_Error(t *testing.T) {
	tests := []struct {
		name     string
		errs     validator.ValidationErrors
		expected string
	}{
		{
			name:     "empty errors",
			errs:     validator.ValidationErrors{},
			expected: "",
		},
		{
			name: "single error",
			errs: validator.ValidationErrors{
				{Field: "story", Message: "story is required"},
			},
			expected: "story is required",
		},
		{
			name: "multiple errors",
			errs: validator.ValidationErrors{
				{Field: "story", Message: "story is required"},
				{Field: "title", Message: "title is required"},
			},
			expected: "story is required; title is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.errs.Error())
		})
	}
}
