package postgres

import (
	"time"

	"content-service/internal/domain"
)

// ContentModel is the GORM model for the contents table.
type ContentModel struct {
	Title         string    `gorm:"type:varchar(500);primaryKey"`
	Story         string    `gorm:"type:text;not null"`
	PublishedDate time.Time `gorm:"not null;index"`
	UserID        string    `gorm:"type:varchar(100)"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName returns the table name for ContentModel.
func (ContentModel) TableName() string {
	return "contents"
}

// ToDomain converts ContentModel to domain.Content.
func (m *ContentModel) ToDomain() *domain.Content {
	return &domain.Content{
		Title:         m.Title,
		Story:         m.Story,
		PublishedDate: m.PublishedDate,
		UserID:        m.UserID,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// FromDomain creates a ContentModel from domain.Content.
func FromDomain(c *domain.Content) *ContentModel {
	return &ContentModel{
		Title:         c.Title,
		Story:         c.Story,
		PublishedDate: c.PublishedDate,
		UserID:        c.UserID,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

// FromDomainSlice converts a slice of domain.Content to ContentModels.
func FromDomainSlice(contents []*domain.Content) []*ContentModel {
	models := make([]*ContentModel, len(contents))
	for i, c := range contents {
		models[i] = FromDomain(c)
	}

	return models
}

func toDomainSlice(models []ContentModel) []*domain.Content {
	contents := make([]*domain.Content, len(models))
	for i := range models {
		contents[i] = models[i].ToDomain()
	}

	return contents
}
