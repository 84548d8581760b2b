package history

import "context"

// Recorder is append-only: create and read, nothing else.
type Recorder interface {
	Record(ctx context.Context, e *Entry) error
	// ListByUserID returns entries newest-first.
	ListByUserID(ctx context.Context, userID uint64) ([]Entry, error)
	ListByApplicationID(ctx context.Context, applicationID uint64) ([]Entry, error)
	// HasDeniedByUserID reports whether any application of the user was
	// ever denied (the eligibility lookback).
	HasDeniedByUserID(ctx context.Context, userID uint64) (bool, error)
}
