package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"content-service/internal/domain"
)

// fakeRepo is an in-memory domain.ContentRepository.
type fakeRepo struct {
	mu       sync.Mutex
	rows     map[string]*domain.Content
	failWith error

	byTitlesCalls  int
	excludingCalls int
	lastOffset     int
	lastLimit      int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{rows: make(map[string]*domain.Content)}
}

func (f *fakeRepo) BulkUpsert(_ context.Context, contents []*domain.Content) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return 0, f.failWith
	}
	for _, c := range contents {
		if existing, ok := f.rows[c.Title]; ok {
			existing.Story = c.Story
			continue
		}
		copied := *c
		f.rows[c.Title] = &copied
	}

	return len(contents), nil
}

func (f *fakeRepo) GetByTitle(_ context.Context, title string) (*domain.Content, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	c, ok := f.rows[title]
	if !ok {
		return nil, nil
	}
	copied := *c

	return &copied, nil
}

func (f *fakeRepo) UpdateStory(_ context.Context, title, story string) (*domain.Content, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	c, ok := f.rows[title]
	if !ok {
		return nil, nil
	}
	c.Story = story
	copied := *c

	return &copied, nil
}

func (f *fakeRepo) Delete(_ context.Context, title string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return false, f.failWith
	}
	if _, ok := f.rows[title]; !ok {
		return false, nil
	}
	delete(f.rows, title)

	return true, nil
}

func (f *fakeRepo) ListLatest(_ context.Context, page domain.Page) ([]*domain.Content, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	all := f.sorted(func(a, b *domain.Content) bool {
		if !a.PublishedDate.Equal(b.PublishedDate) {
			return a.PublishedDate.After(b.PublishedDate)
		}

		return a.Title < b.Title
	})

	offset, limit := page.Window()

	return window(all, offset, limit), nil
}

func (f *fakeRepo) ListByTitles(_ context.Context, titles []string) ([]*domain.Content, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byTitlesCalls++
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []*domain.Content
	for _, t := range titles {
		if c, ok := f.rows[t]; ok {
			copied := *c
			out = append(out, &copied)
		}
	}

	return out, nil
}

func (f *fakeRepo) ListExcludingTitles(_ context.Context, titles []string, offset, limit int) ([]*domain.Content, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.excludingCalls++
	f.lastOffset = offset
	f.lastLimit = limit
	if f.failWith != nil {
		return nil, f.failWith
	}
	excluded := make(map[string]struct{}, len(titles))
	for _, t := range titles {
		excluded[t] = struct{}{}
	}
	all := f.sorted(func(a, b *domain.Content) bool { return a.Title < b.Title })
	var kept []*domain.Content
	for _, c := range all {
		if _, skip := excluded[c.Title]; !skip {
			kept = append(kept, c)
		}
	}

	return window(kept, offset, limit), nil
}

func (f *fakeRepo) Count(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return int64(len(f.rows)), nil
}

func (f *fakeRepo) sorted(less func(a, b *domain.Content) bool) []*domain.Content {
	all := make([]*domain.Content, 0, len(f.rows))
	for _, c := range f.rows {
		copied := *c
		all = append(all, &copied)
	}
	sort.Slice(all, func(i, j int) bool { return less(all[i], all[j]) })

	return all
}

func window(rows []*domain.Content, offset, limit int) []*domain.Content {
	if offset >= len(rows) {
		return nil
	}
	end := offset + limit
	if end > len(rows) {
		end = len(rows)
	}

	return rows[offset:end]
}

// fakeInteraction is a scripted domain.InteractionClient.
type fakeInteraction struct {
	records []domain.EngagementRecord
	err     error
	calls   int
}

func (f *fakeInteraction) FetchEngagementPage(_ context.Context, _ domain.Page) ([]domain.EngagementRecord, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}

	return f.records, nil
}

// fakeUsers is a scripted domain.UserDirectory.
type fakeUsers struct {
	exists bool
	err    error
	calls  int
}

func (f *fakeUsers) Exists(_ context.Context, _ string) (bool, error) {
	f.calls++
	if f.err != nil {
		return false, f.err
	}

	return f.exists, nil
}

// fakeCache is an in-memory domain.Cache.
type fakeCache struct {
	mu     sync.Mutex
	data   map[string][]byte
	clears int
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string][]byte)}
}

func (f *fakeCache) Get(_ context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.data[key], nil
}

func (f *fakeCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = value

	return nil
}

func (f *fakeCache) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.data, key)

	return nil
}

func (f *fakeCache) Clear(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clears++
	f.data = make(map[string][]byte)

	return nil
}

var errStorage = errors.New("storage exploded")
