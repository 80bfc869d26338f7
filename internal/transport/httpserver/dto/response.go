package dto

import (
	"time"

	"content-service/internal/domain"
)

// ContentResponse represents a stored content row.
type ContentResponse struct {
	Title         string `json:"title"`
	Story         string `json:"story"`
	PublishedDate string `json:"publishedDate"`
	UserID        string `json:"userId,omitempty"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
}

// FromDomainContent converts domain.Content to ContentResponse.
func FromDomainContent(c *domain.Content) ContentResponse {
	return ContentResponse{
		Title:         c.Title,
		Story:         c.Story,
		PublishedDate: c.PublishedDate.Format(time.RFC3339),
		UserID:        c.UserID,
		CreatedAt:     c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     c.UpdatedAt.Format(time.RFC3339),
	}
}

// RankedContentResponse represents one entry of the top view, a stored row
// joined with its engagement counters.
type RankedContentResponse struct {
	Title         string `json:"title"`
	Story         string `json:"story"`
	PublishedDate string `json:"publishedDate"`
	UserID        string `json:"userId,omitempty"`
	TotalReads    int    `json:"totalReads"`
	TotalLikes    int    `json:"totalLikes"`
}

// FeedResponse represents one page of the latest view.
type FeedResponse struct {
	Contents   []ContentResponse `json:"contents"`
	Pagination PaginationMeta    `json:"pagination"`
}

// TopFeedResponse represents one page of the top view.
type TopFeedResponse struct {
	Contents   []RankedContentResponse `json:"contents"`
	Pagination PaginationMeta          `json:"pagination"`
}

// PaginationMeta holds pagination metadata.
type PaginationMeta struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// FromContents converts a latest page to FeedResponse.
func FromContents(contents []*domain.Content, page domain.Page) FeedResponse {
	out := make([]ContentResponse, len(contents))
	for i, c := range contents {
		out[i] = FromDomainContent(c)
	}

	return FeedResponse{
		Contents:   out,
		Pagination: PaginationMeta{Page: int(page), PageSize: domain.PageSize},
	}
}

// FromRanked converts a top page to TopFeedResponse.
func FromRanked(ranked []domain.RankedContent, page domain.Page) TopFeedResponse {
	out := make([]RankedContentResponse, len(ranked))
	for i, r := range ranked {
		out[i] = RankedContentResponse{
			Title:         r.Title,
			Story:         r.Story,
			PublishedDate: r.PublishedDate,
			UserID:        r.UserID,
			TotalReads:    r.TotalReads,
			TotalLikes:    r.TotalLikes,
		}
	}

	return TopFeedResponse{
		Contents:   out,
		Pagination: PaginationMeta{Page: int(page), PageSize: domain.PageSize},
	}
}

// ImportResponse reports how many rows an upload processed.
type ImportResponse struct {
	Processed int `json:"processed"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string      `json:"error"`
	Code    string      `json:"code,omitempty"`
	Details interface{} `json:"details,omitempty"`
}
