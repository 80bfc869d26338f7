// Package dto defines request and response shapes for the HTTP API.
package dto

// UpdateStoryRequest is the PATCH /content/:title body.
type UpdateStoryRequest struct {
	Story string `json:"story" validate:"required,min=1"`
}

// CreateContentRequest is a single JSON content row, accepted on
// POST /content when the request is not multipart.
type CreateContentRequest struct {
	Title         string `json:"title" validate:"required,min=1,max=500"`
	Story         string `json:"story" validate:"required,min=1"`
	PublishedDate string `json:"publishedDate" validate:"required,pubdate"`
}
