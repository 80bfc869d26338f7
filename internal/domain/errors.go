package domain

import "errors"

// Sentinel errors form the service failure taxonomy. Handlers map them to
// stable error codes at the request boundary; none are retried automatically.
var (
	// ErrInvalidPage marks a non-positive or non-numeric page number.
	ErrInvalidPage = errors.New("page value is invalid")

	// ErrContentNotFound marks a lookup for a title with no stored row.
	ErrContentNotFound = errors.New("content not found")

	// ErrUserNotFound marks a user id the user service reports as absent.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserIDRequired marks a mutating request without a user id.
	ErrUserIDRequired = errors.New("user id is required")

	// ErrUserLookupUnavailable marks a user existence check that failed for
	// reasons other than absence. The gate stays closed, but callers can
	// tell a retryable outage from a genuinely missing user.
	ErrUserLookupUnavailable = errors.New("user service unavailable")

	// ErrInteractionUnavailable marks a failed engagement page fetch. No
	// merge is attempted on top of it.
	ErrInteractionUnavailable = errors.New("interaction service unavailable")

	// ErrInvalidImport marks an import batch with a malformed row. The whole
	// batch is rejected before any write.
	ErrInvalidImport = errors.New("import file is invalid")
)
