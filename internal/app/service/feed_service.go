// Package service provides application use cases.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"content-service/internal/domain"
)

// FeedService serves the two listing views: latest (publish-date scan) and
// top (engagement ranking merged against local storage). Listings run behind
// the same user existence gate as the CRUD operations when a user id is
// supplied.
type FeedService struct {
	repo        domain.ContentRepository
	interaction domain.InteractionClient
	users       domain.UserDirectory
	cache       domain.Cache // nil when caching is disabled
	cacheTTL    time.Duration
	logger      *zap.Logger
}

// NewFeedService creates a new FeedService. cache may be nil.
func NewFeedService(
	repo domain.ContentRepository,
	interaction domain.InteractionClient,
	users domain.UserDirectory,
	cache domain.Cache,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *FeedService {
	return &FeedService{
		repo:        repo,
		interaction: interaction,
		users:       users,
		cache:       cache,
		cacheTTL:    cacheTTL,
		logger:      logger,
	}
}

// Latest returns one page of content ordered by publish date descending.
func (s *FeedService) Latest(ctx context.Context, userID string, page domain.Page) ([]*domain.Content, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}
	if err := gateOptional(ctx, s.users, userID); err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("feed:new:%d", page)
	var cached []*domain.Content
	if s.fromCache(ctx, cacheKey, &cached) {
		return cached, nil
	}

	contents, err := s.repo.ListLatest(ctx, page)
	if err != nil {
		s.logger.Error("latest listing failed", zap.Int("page", int(page)), zap.Error(err))

		return nil, err
	}

	s.toCache(ctx, cacheKey, contents)

	return contents, nil
}

// Top returns one page of content ranked by external engagement, backfilled
// with zero-engagement local rows when the engagement page leaves the page
// short.
//
// The two storage reads are not transactionally isolated; a concurrent write
// between them can momentarily surface a stale or duplicate entry. That
// relaxation is accepted in exchange for plain reads.
func (s *FeedService) Top(ctx context.Context, userID string, page domain.Page) ([]domain.RankedContent, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}
	if err := gateOptional(ctx, s.users, userID); err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("feed:top:%d", page)
	var cached []domain.RankedContent
	if s.fromCache(ctx, cacheKey, &cached) {
		return cached, nil
	}

	// A failed engagement fetch aborts the merge; no storage queries run.
	records, err := s.interaction.FetchEngagementPage(ctx, page)
	if err != nil {
		return nil, err
	}

	titles := domain.TitleSet(records)

	matched, err := s.repo.ListByTitles(ctx, titles)
	if err != nil {
		s.logger.Error("engagement title lookup failed", zap.Int("page", int(page)), zap.Error(err))

		return nil, err
	}

	ranked := domain.MergePage(records, matched, nil)

	if shortfall := domain.PageSize - len(ranked); shortfall > 0 {
		offset, _ := page.Window()
		filler, err := s.repo.ListExcludingTitles(ctx, titles, offset, shortfall)
		if err != nil {
			s.logger.Error("filler query failed", zap.Int("page", int(page)), zap.Error(err))

			return nil, err
		}
		ranked = domain.MergePage(records, matched, filler)
	}

	s.logger.Debug("top page merged",
		zap.Int("page", int(page)),
		zap.Int("engagement_records", len(records)),
		zap.Int("matched", len(matched)),
		zap.Int("total", len(ranked)),
	)

	s.toCache(ctx, cacheKey, ranked)

	return ranked, nil
}

// fromCache loads a cached page into out. Cache failures only miss.
func (s *FeedService) fromCache(ctx context.Context, key string, out interface{}) bool {
	if s.cache == nil {
		return false
	}

	data, err := s.cache.Get(ctx, key)
	if err != nil || data == nil {
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		s.logger.Warn("cache entry unreadable, dropping", zap.String("key", key), zap.Error(err))
		_ = s.cache.Delete(ctx, key)

		return false
	}

	return true
}

func (s *FeedService) toCache(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, data, s.cacheTTL); err != nil {
		s.logger.Warn("cache fill failed", zap.String("key", key), zap.Error(err))
	}
}
