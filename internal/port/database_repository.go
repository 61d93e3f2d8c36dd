package port

import (
	"context"

	"github.com/rl1809/roomledger/internal/core/domain"
)

type DatabaseRepository interface {
	CreateProperty(ctx context.Context, p domain.Property) error

	// GetProperty retrieves a property by id, nil when absent
	GetProperty(ctx context.Context, id string) (*domain.Property, error)

	// UpdateProperty persists changed counters with a version check for
	// optimistic locking
	UpdateProperty(ctx context.Context, p domain.Property) error

	CreatePool(ctx context.Context, pool domain.Pool) error
	GetPool(ctx context.Context, id string) (*domain.Pool, error)
	UpdatePool(ctx context.Context, pool domain.Pool) error

	// AppendEvent journals a completed state transition
	AppendEvent(ctx context.Context, e domain.Event) error
}
