package inventory

import (
	"context"

	"github.com/fekuna/omnipos-catalog-sync/internal/model"
)

// Repository is bound to one open connection for the duration of a run.
type Repository interface {
	// EnsureSchema creates product_inventory if it does not exist yet.
	EnsureSchema(ctx context.Context) error

	// UpsertBatch writes every row inside one transaction and commits once.
	// Any failing row rolls the whole batch back.
	UpsertBatch(ctx context.Context, rows []model.InventoryRow) error

	Close() error
}

// Connector acquires the scoped connection a run works on.
type Connector interface {
	Connect(ctx context.Context) (Repository, error)
}
