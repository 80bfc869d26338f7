// Package job provides background job schedulers.
package job

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"content-service/internal/domain"
	"content-service/pkg/locker"
)

// FeedWarmer is the slice of the feed service the scheduler needs: reading a
// page populates its cache entry as a side effect. The scheduler reads with
// an empty user id, which skips the user existence gate.
type FeedWarmer interface {
	Latest(ctx context.Context, userID string, page domain.Page) ([]*domain.Content, error)
	Top(ctx context.Context, userID string, page domain.Page) ([]domain.RankedContent, error)
}

// WarmScheduler periodically refreshes the first feed pages so the common
// reads are served from cache. Distributed locking ensures only one instance
// warms at a time.
type WarmScheduler struct {
	feeds    FeedWarmer
	interval time.Duration
	timeout  time.Duration
	logger   *zap.Logger
	locker   locker.DistributedLocker

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// WarmConfig holds warm scheduler configuration.
type WarmConfig struct {
	Interval  time.Duration
	Timeout   time.Duration
	OnStartup bool
}

// NewWarmScheduler creates a new WarmScheduler with distributed locking support.
func NewWarmScheduler(
	feeds FeedWarmer,
	cfg WarmConfig,
	logger *zap.Logger,
	locker locker.DistributedLocker,
) *WarmScheduler {
	return &WarmScheduler{
		feeds:    feeds,
		interval: cfg.Interval,
		timeout:  cfg.Timeout,
		logger:   logger,
		locker:   locker,
	}
}

// Start begins the background warm job.
func (s *WarmScheduler) Start(runOnStartup bool) {
	s.ctx, s.cancel = context.WithCancel(context.Background())

	s.logger.Info("starting warm scheduler",
		zap.Duration("interval", s.interval),
		zap.Bool("run_on_startup", runOnStartup),
	)

	s.wg.Add(1)
	go s.run(runOnStartup)
}

// Stop gracefully stops the scheduler.
func (s *WarmScheduler) Stop() {
	s.logger.Info("stopping warm scheduler")
	s.cancel()
	s.wg.Wait()
	s.logger.Info("warm scheduler stopped")
}

// run is the main loop of the scheduler.
func (s *WarmScheduler) run(runOnStartup bool) {
	defer s.wg.Done()

	if runOnStartup {
		s.executeWarm()
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.executeWarm()
		}
	}
}

// executeWarm refreshes the first page of both views under the lock.
//
// Locking behavior:
//   - Lock TTL = interval duration (cooldown model, not timeout)
//   - Success: lock held for the full interval to prevent duplicate warms
//   - Failure: lock released immediately so another instance can retry
func (s *WarmScheduler) executeWarm() {
	const lockKey = "warm:scheduler:lock"

	acquired, err := s.locker.Acquire(s.ctx, lockKey, s.interval)
	if err != nil {
		s.logger.Error("failed to acquire distributed lock", zap.Error(err))

		return
	}
	if !acquired {
		s.logger.Debug("another instance is warming, skipping execution")

		return
	}

	ctx, cancel := context.WithTimeout(s.ctx, s.timeout)
	defer cancel()

	failed := false
	if _, err := s.feeds.Top(ctx, "", 1); err != nil {
		failed = true
		s.logger.Warn("top page warm failed", zap.Error(err))
	}
	if _, err := s.feeds.Latest(ctx, "", 1); err != nil {
		failed = true
		s.logger.Warn("latest page warm failed", zap.Error(err))
	}

	if failed {
		// Release the lock immediately so another instance can retry.
		if err := s.locker.Release(s.ctx, lockKey); err != nil {
			s.logger.Error("failed to release lock after warm error", zap.Error(err))
		}

		return
	}

	s.logger.Info("feed pages warmed, lock held for cooldown",
		zap.Duration("cooldown", s.interval),
	)
}
