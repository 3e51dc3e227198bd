package repository

import (
	"context"
	"fmt"

	"github.com/fekuna/omnipos-catalog-sync/internal/model"
	"github.com/jmoiron/sqlx"
)

type SQLRepository struct {
	DB    *sqlx.DB
	stmts statements
}

// NewSQLRepository takes ownership of db; Close closes it.
func NewSQLRepository(db *sqlx.DB, driver string, mode model.SyncMode) (*SQLRepository, error) {
	stmts, err := statementsFor(driver, mode)
	if err != nil {
		return nil, err
	}
	return &SQLRepository{DB: db, stmts: stmts}, nil
}

func (r *SQLRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.DB.ExecContext(ctx, r.stmts.schema); err != nil {
		return fmt.Errorf("failed to create product_inventory: %w", err)
	}
	return nil
}

func (r *SQLRepository) UpsertBatch(ctx context.Context, rows []model.InventoryRow) error {
	if len(rows) == 0 {
		return nil
	}

	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for i := range rows {
		if _, err := tx.NamedExecContext(ctx, r.stmts.upsert, &rows[i]); err != nil {
			return fmt.Errorf("failed to upsert product %d: %w", rows[i].ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit batch: %w", err)
	}
	return nil
}

func (r *SQLRepository) Close() error {
	return r.DB.Close()
}
