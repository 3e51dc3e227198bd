package inventory

import (
	"context"

	"github.com/fekuna/omnipos-catalog-sync/internal/inventory/dto"
)

type UseCase interface {
	// Sync runs one full extract-transform-load pass. Failures are reported
	// in the result, never returned separately.
	Sync(ctx context.Context) *dto.SyncResult

	EnsureSchema(ctx context.Context) error
}
