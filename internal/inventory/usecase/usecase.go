package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fekuna/omnipos-catalog-sync/internal/catalog"
	"github.com/fekuna/omnipos-catalog-sync/internal/inventory"
	"github.com/fekuna/omnipos-catalog-sync/internal/inventory/dto"
	"github.com/fekuna/omnipos-catalog-sync/internal/model"
	"github.com/fekuna/omnipos-catalog-sync/internal/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type syncUseCase struct {
	connector inventory.Connector
	catalog   catalog.Client
	mode      model.SyncMode
	logger    logger.ZapLogger
	now       func() time.Time
}

func NewSyncUseCase(connector inventory.Connector, client catalog.Client, mode model.SyncMode, log logger.ZapLogger) inventory.UseCase {
	return &syncUseCase{
		connector: connector,
		catalog:   client,
		mode:      mode,
		logger:    log,
		now:       time.Now,
	}
}

func (uc *syncUseCase) Sync(ctx context.Context) *dto.SyncResult {
	result := &dto.SyncResult{
		RunID:     uuid.New().String(),
		Mode:      uc.mode,
		StartedAt: uc.now(),
	}
	log := uc.logger.With(zap.String("run_id", result.RunID), zap.String("mode", uc.mode.String()))

	count, err := uc.run(ctx, log)
	result.FinishedAt = uc.now()

	if err != nil {
		result.Kind = kindOf(err)
		result.Message = err.Error()
		result.Err = err
		log.Error("Catalog sync failed",
			zap.String("kind", string(result.Kind)),
			zap.Duration("duration", result.Duration()),
			zap.Error(err),
		)
		return result
	}

	result.Count = count
	log.Info("Catalog sync finished",
		zap.Int("count", count),
		zap.Duration("duration", result.Duration()),
	)
	return result
}

func (uc *syncUseCase) run(ctx context.Context, log logger.ZapLogger) (int, error) {
	// 1. Connect; nothing else happens without a store.
	repo, err := uc.connector.Connect(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", inventory.ErrConnection, err)
	}
	defer uc.release(repo, log)
	log.Debug("Connected to inventory store")

	// 2. Schema
	if err := repo.EnsureSchema(ctx); err != nil {
		return 0, fmt.Errorf("%w: %w", inventory.ErrSchema, err)
	}

	// 3. Extract
	log.Info("Fetching product catalog")
	products, err := uc.catalog.FetchProducts(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", inventory.ErrExtraction, err)
	}

	// 4. Transform
	rows := make([]model.InventoryRow, 0, len(products))
	for _, p := range products {
		row, err := p.ToInventoryRow(uc.mode)
		if err != nil {
			return 0, fmt.Errorf("%w: %w", inventory.ErrTransform, err)
		}
		rows = append(rows, row)

		fields := []zap.Field{zap.Int64("id", row.ID), zap.String("title", row.Title), zap.String("price", row.Price.StringFixed(2))}
		if uc.mode.TracksValue() {
			fields = append(fields, zap.String("inventory_value", row.InventoryValue.StringFixed(2)))
		}
		log.Info("Processed product", fields...)
	}

	// 5 + 6. Load and commit once
	if err := repo.UpsertBatch(ctx, rows); err != nil {
		return 0, fmt.Errorf("%w: %w", inventory.ErrLoad, err)
	}

	return len(rows), nil
}

func (uc *syncUseCase) EnsureSchema(ctx context.Context) error {
	repo, err := uc.connector.Connect(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", inventory.ErrConnection, err)
	}
	defer uc.release(repo, uc.logger)

	if err := repo.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("%w: %w", inventory.ErrSchema, err)
	}
	uc.logger.Info("Ensured product_inventory table", zap.String("mode", uc.mode.String()))
	return nil
}

func (uc *syncUseCase) release(repo inventory.Repository, log logger.ZapLogger) {
	if err := repo.Close(); err != nil {
		log.Warn("Failed to close inventory store", zap.Error(err))
	}
}

func kindOf(err error) dto.ErrorKind {
	switch {
	case errors.Is(err, inventory.ErrConnection):
		return dto.KindConnection
	case errors.Is(err, inventory.ErrSchema):
		return dto.KindSchema
	case errors.Is(err, inventory.ErrExtraction):
		return dto.KindExtraction
	case errors.Is(err, inventory.ErrTransform):
		return dto.KindTransform
	default:
		return dto.KindLoad
	}
}
