package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"content-service/internal/domain"
)

// Repository implements domain.ContentRepository using PostgreSQL.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new PostgreSQL repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// BulkUpsert inserts contents in a single transaction. On title conflict
// only the story (and updated_at) is overwritten; the publish date and owner
// set at creation are never touched. Any failure rolls back the whole batch.
func (r *Repository) BulkUpsert(ctx context.Context, contents []*domain.Content) (int, error) {
	if len(contents) == 0 {
		return 0, nil
	}

	now := time.Now().UTC()
	models := FromDomainSlice(contents)
	for _, m := range models {
		m.UpdatedAt = now
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "title"}},
			DoUpdates: clause.AssignmentColumns([]string{"story", "updated_at"}),
		}).CreateInBatches(models, 100).Error
	})
	if err != nil {
		return 0, fmt.Errorf("bulk upserting contents: %w", err)
	}

	return len(models), nil
}

// GetByTitle retrieves a single content by its normalized title.
func (r *Repository) GetByTitle(ctx context.Context, title string) (*domain.Content, error) {
	var model ContentModel
	err := r.db.WithContext(ctx).Where("title = ?", title).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // Not found
		}

		return nil, fmt.Errorf("getting content by title: %w", err)
	}

	return model.ToDomain(), nil
}

// UpdateStory overwrites the story of an existing row and returns the stored
// row as re-read after the write. Returns (nil, nil) when no row matched.
func (r *Repository) UpdateStory(ctx context.Context, title, story string) (*domain.Content, error) {
	result := r.db.WithContext(ctx).
		Model(&ContentModel{}).
		Where("title = ?", title).
		Updates(map[string]interface{}{
			"story":      story,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return nil, fmt.Errorf("updating story: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil // Not found
	}

	return r.GetByTitle(ctx, title)
}

// Delete removes a row by title. Returns false when no row existed.
func (r *Repository) Delete(ctx context.Context, title string) (bool, error) {
	result := r.db.WithContext(ctx).Where("title = ?", title).Delete(&ContentModel{})
	if result.Error != nil {
		return false, fmt.Errorf("deleting content: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

// ListLatest returns one fixed-size page ordered by publish date descending.
// Title breaks ties so pages stay deterministic.
func (r *Repository) ListLatest(ctx context.Context, page domain.Page) ([]*domain.Content, error) {
	offset, limit := page.Window()

	var models []ContentModel
	err := r.db.WithContext(ctx).
		Order("published_date DESC, title ASC").
		Offset(offset).
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("listing latest contents: %w", err)
	}

	return toDomainSlice(models), nil
}

// ListByTitles returns the rows whose title is in the given set.
func (r *Repository) ListByTitles(ctx context.Context, titles []string) ([]*domain.Content, error) {
	if len(titles) == 0 {
		return nil, nil
	}

	var models []ContentModel
	err := r.db.WithContext(ctx).
		Where("title IN ?", titles).
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("listing contents by titles: %w", err)
	}

	return toDomainSlice(models), nil
}

// ListExcludingTitles returns up to limit rows whose title is not in the
// given set, ordered by title ascending for a stable filler page.
func (r *Repository) ListExcludingTitles(ctx context.Context, titles []string, offset, limit int) ([]*domain.Content, error) {
	query := r.db.WithContext(ctx).Model(&ContentModel{})
	if len(titles) > 0 {
		query = query.Where("title NOT IN ?", titles)
	}

	var models []ContentModel
	err := query.
		Order("title ASC").
		Offset(offset).
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("listing contents excluding titles: %w", err)
	}

	return toDomainSlice(models), nil
}

// Count returns the total number of stored rows.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&ContentModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("counting contents: %w", err)
	}

	return count, nil
}
