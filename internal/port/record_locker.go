package port

import "context"

// RecordLocker provides per-record mutual exclusion. Every mutating
// operation holds the record's lock for its whole duration, ledger calls
// included, so no caller observes a partial effect.
type RecordLocker interface {
	// Acquire blocks until the named lock is held and returns its release.
	Acquire(ctx context.Context, key string) (func(), error)
}
