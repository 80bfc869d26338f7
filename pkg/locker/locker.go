// Package locker provides distributed locking for coordinating background
// work across multiple service instances.
package locker

import (
	"context"
	"time"
)

// DistributedLocker provides cross-instance mutual exclusion.
// Implementations must be safe for concurrent use.
//
// Typical usage:
//
//	acquired, err := locker.Acquire(ctx, "my-lock", 5*time.Minute)
//	if err != nil || !acquired {
//	    return err
//	}
//	defer locker.Release(ctx, "my-lock")
type DistributedLocker interface {
	// Acquire attempts to take the lock identified by key. It returns false
	// without error when another instance holds it. The lock expires on its
	// own after ttl if never released.
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)

	// Release releases the lock identified by key. Calling it for a lock
	// this instance does not own is a no-op.
	Release(ctx context.Context, key string) error
}
