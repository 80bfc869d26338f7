package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"content-service/internal/domain"
)

// ContentService handles the content CRUD operations. Every operation runs
// behind the user existence gate: mutations require a user id, reads check
// only when one is supplied.
type ContentService struct {
	repo   domain.ContentRepository
	users  domain.UserDirectory
	cache  domain.Cache // nil when caching is disabled
	logger *zap.Logger
}

// NewContentService creates a new ContentService. cache may be nil.
func NewContentService(
	repo domain.ContentRepository,
	users domain.UserDirectory,
	cache domain.Cache,
	logger *zap.Logger,
) *ContentService {
	return &ContentService{
		repo:   repo,
		users:  users,
		cache:  cache,
		logger: logger,
	}
}

// Import parses a CSV stream (header: title, story, publishedDate) and
// upserts every row in one batch. Titles are normalized; on conflict only
// the story is overwritten. A single malformed row rejects the whole batch
// before any write. Returns the number of rows processed.
func (s *ContentService) Import(ctx context.Context, userID string, r io.Reader) (int, error) {
	if err := requireUser(ctx, s.users, userID); err != nil {
		return 0, err
	}

	contents, err := parseImport(r, userID)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrInvalidImport, err)
	}

	count, err := s.repo.BulkUpsert(ctx, contents)
	if err != nil {
		s.logger.Error("import failed", zap.Int("rows", len(contents)), zap.Error(err))

		return 0, err
	}

	s.logger.Info("content imported",
		zap.Int("rows", count),
		zap.String("user_id", userID),
	)
	s.invalidateFeeds(ctx)

	return count, nil
}

// Get retrieves a content row by title.
func (s *ContentService) Get(ctx context.Context, userID, title string) (*domain.Content, error) {
	if err := gateOptional(ctx, s.users, userID); err != nil {
		return nil, err
	}

	content, err := s.repo.GetByTitle(ctx, domain.NormalizeTitle(title))
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, domain.ErrContentNotFound
	}

	return content, nil
}

// UpdateStory replaces the story of an existing row and returns the stored
// row as re-read after the write.
func (s *ContentService) UpdateStory(ctx context.Context, userID, title, story string) (*domain.Content, error) {
	if err := requireUser(ctx, s.users, userID); err != nil {
		return nil, err
	}

	content, err := s.repo.UpdateStory(ctx, domain.NormalizeTitle(title), story)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, domain.ErrContentNotFound
	}

	s.invalidateFeeds(ctx)

	return content, nil
}

// Delete removes a content row. Deletion is physical and irreversible.
func (s *ContentService) Delete(ctx context.Context, userID, title string) error {
	if err := requireUser(ctx, s.users, userID); err != nil {
		return err
	}

	deleted, err := s.repo.Delete(ctx, domain.NormalizeTitle(title))
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrContentNotFound
	}

	s.invalidateFeeds(ctx)

	return nil
}

// Count returns the total number of stored rows.
func (s *ContentService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

// invalidateFeeds drops cached feed pages after a mutation. Failures are
// tolerated: entries expire by TTL anyway.
func (s *ContentService) invalidateFeeds(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Clear(ctx); err != nil {
		s.logger.Warn("feed cache invalidation failed", zap.Error(err))
	}
}

// parseImport reads the CSV rows into normalized contents. Column order is
// taken from the header row; title, story and publishedDate are required.
func parseImport(r io.Reader, userID string) ([]*domain.Content, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"title", "story", "publishedDate"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("missing column %q", required)
		}
	}

	var contents []*domain.Content
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		content, err := domain.NewContent(
			row[cols["title"]],
			row[cols["story"]],
			row[cols["publishedDate"]],
			userID,
		)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		contents = append(contents, content)
	}

	if len(contents) == 0 {
		return nil, fmt.Errorf("no data rows")
	}

	return contents, nil
}
