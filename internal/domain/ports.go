package domain

import (
	"context"
	"time"
)

// ContentRepository defines the interface for content persistence.
// Implementation: internal/infra/postgres/repository.go
type ContentRepository interface {
	// BulkUpsert inserts the given contents in one transaction. On title
	// conflict only the story is overwritten; publish date and owner are
	// immutable. All-or-nothing: any failure rolls back the whole batch.
	// Returns the number of rows processed.
	BulkUpsert(ctx context.Context, contents []*Content) (int, error)

	// GetByTitle retrieves a row by normalized title. Returns (nil, nil)
	// when the title is absent; absence is not an error.
	GetByTitle(ctx context.Context, title string) (*Content, error)

	// UpdateStory overwrites the story of an existing row and returns the
	// freshly stored row. Returns (nil, nil) when no row matched.
	UpdateStory(ctx context.Context, title, story string) (*Content, error)

	// Delete removes a row by title. Returns false when no row existed.
	Delete(ctx context.Context, title string) (bool, error)

	// ListLatest returns one page ordered by publish date descending
	// (title ascending as tiebreak).
	ListLatest(ctx context.Context, page Page) ([]*Content, error)

	// ListByTitles returns the rows whose title is in the given set.
	ListByTitles(ctx context.Context, titles []string) ([]*Content, error)

	// ListExcludingTitles returns up to limit rows whose title is not in
	// the given set, ordered by title ascending, starting at offset.
	ListExcludingTitles(ctx context.Context, titles []string, offset, limit int) ([]*Content, error)

	// Count returns the total number of stored rows.
	Count(ctx context.Context) (int64, error)
}

// InteractionClient fetches engagement pages from the interaction service.
// Implementation: internal/infra/interaction/client.go
type InteractionClient interface {
	// FetchEngagementPage returns the engagement records for a page. The
	// page may be shorter than PageSize and may list titles this service
	// never stored. Any non-success response is a hard failure.
	FetchEngagementPage(ctx context.Context, page Page) ([]EngagementRecord, error)
}

// UserDirectory answers whether a user id is known to the user service.
// Implementation: internal/infra/userdir/client.go
type UserDirectory interface {
	// Exists reports whether the user id is valid. A definitive negative
	// answer is (false, nil); transport failures and server errors return
	// ErrUserLookupUnavailable so callers can tell outage from absence.
	Exists(ctx context.Context, userID string) (bool, error)
}

// Cache defines the interface for caching operations.
// Implementation: internal/infra/redis/cache.go
type Cache interface {
	// Get retrieves a value by key. Returns nil if not found.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with the given TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value by key.
	Delete(ctx context.Context, key string) error

	// Clear removes all cached values.
	Clear(ctx context.Context) error
}
