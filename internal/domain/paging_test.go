package domain

import (
	"errors"
	"testing"
)

func TestPage_Validate(t *testing.T) {
	for _, p := range []Page{1, 2, 1000} {
		if err := p.Validate(); err != nil {
			t.Errorf("Page(%d).Validate() = %v, want nil", p, err)
		}
	}
	for _, p := range []Page{0, -1, -100} {
		if err := p.Validate(); !errors.Is(err, ErrInvalidPage) {
			t.Errorf("Page(%d).Validate() = %v, want ErrInvalidPage", p, err)
		}
	}
}

func TestPage_Window(t *testing.T) {
	tests := []struct {
		page       Page
		wantOffset int
	}{
		{1, 0},
		{2, 100},
		{5, 400},
	}

	for _, tt := range tests {
		offset, limit := tt.page.Window()
		if offset != tt.wantOffset {
			t.Errorf("Page(%d).Window() offset = %d, want %d", tt.page, offset, tt.wantOffset)
		}
		// Pages are fixed-size, never cumulative.
		if limit != PageSize {
			t.Errorf("Page(%d).Window() limit = %d, want %d", tt.page, limit, PageSize)
		}
	}
}
