package repository

import (
	"context"

	"github.com/fekuna/omnipos-catalog-sync/internal/inventory"
	"github.com/fekuna/omnipos-catalog-sync/internal/model"
	"github.com/fekuna/omnipos-catalog-sync/internal/pkg/database"
)

// Connector opens a fresh single-connection handle per run.
type Connector struct {
	cfg  database.Config
	mode model.SyncMode
}

func NewConnector(cfg database.Config, mode model.SyncMode) *Connector {
	return &Connector{cfg: cfg, mode: mode}
}

func (c *Connector) Connect(ctx context.Context) (inventory.Repository, error) {
	db, err := database.Open(ctx, &c.cfg)
	if err != nil {
		return nil, err
	}

	repo, err := NewSQLRepository(db, c.cfg.Driver, c.mode)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}
