package service

import (
	"context"
	"errors"
	"fmt"

	"content-service/internal/domain"
)

// requireUser enforces the fail-closed existence gate for mutations.
func requireUser(ctx context.Context, users domain.UserDirectory, userID string) error {
	if userID == "" {
		return domain.ErrUserIDRequired
	}

	return checkUser(ctx, users, userID)
}

// gateOptional checks the gate only when a user id was supplied. Reads and
// listings pass it through here.
func gateOptional(ctx context.Context, users domain.UserDirectory, userID string) error {
	if userID == "" {
		return nil
	}

	return checkUser(ctx, users, userID)
}

func checkUser(ctx context.Context, users domain.UserDirectory, userID string) error {
	exists, err := users.Exists(ctx, userID)
	if err != nil {
		// Fail closed, but keep outage distinguishable from absence.
		if errors.Is(err, domain.ErrUserLookupUnavailable) {
			return err
		}

		return fmt.Errorf("%w: %v", domain.ErrUserLookupUnavailable, err)
	}
	if !exists {
		return domain.ErrUserNotFound
	}

	return nil
}
