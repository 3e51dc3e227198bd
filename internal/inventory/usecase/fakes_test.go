package usecase_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/fekuna/omnipos-catalog-sync/internal/inventory"
	"github.com/fekuna/omnipos-catalog-sync/internal/model"
)

// fakeStore is an in-memory product_inventory with the same conflict rules
// as the SQL upserts.
type fakeStore struct {
	mu       sync.Mutex
	mode     model.SyncMode
	rows     map[int64]model.InventoryRow
	clock    time.Time
	failOnID int64

	connectErr error
	schemaErr  error

	connects  int
	closes    int
	schemas   int
	commits   int
	rollbacks int
}

func newFakeStore(mode model.SyncMode) *fakeStore {
	return &fakeStore{
		mode:  mode,
		rows:  map[int64]model.InventoryRow{},
		clock: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (s *fakeStore) Connect(context.Context) (inventory.Repository, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.connectErr != nil {
		return nil, s.connectErr
	}
	s.connects++
	return &fakeRepo{store: s}, nil
}

func (s *fakeStore) snapshot() map[int64]model.InventoryRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[int64]model.InventoryRow, len(s.rows))
	for k, v := range s.rows {
		out[k] = v
	}
	return out
}

type fakeRepo struct {
	store  *fakeStore
	closed bool
}

func (r *fakeRepo) EnsureSchema(context.Context) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.schemas++
	return r.store.schemaErr
}

func (r *fakeRepo) UpsertBatch(_ context.Context, rows []model.InventoryRow) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	staged := make(map[int64]model.InventoryRow, len(s.rows))
	for k, v := range s.rows {
		staged[k] = v
	}

	for _, row := range rows {
		if s.failOnID != 0 && row.ID == s.failOnID {
			s.rollbacks++
			return errors.New("constraint violation")
		}
		s.clock = s.clock.Add(time.Second)

		existing, ok := staged[row.ID]
		if !ok {
			row.LastUpdated = s.clock
			staged[row.ID] = row
			continue
		}
		existing.Price = row.Price
		existing.Stock = row.Stock
		if s.mode.TracksValue() {
			existing.InventoryValue = row.InventoryValue
		} else {
			existing.Rating = row.Rating
		}
		existing.LastUpdated = s.clock
		staged[row.ID] = existing
	}

	s.rows = staged
	s.commits++
	return nil
}

func (r *fakeRepo) Close() error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.closed {
		return errors.New("already closed")
	}
	r.closed = true
	r.store.closes++
	return nil
}

type fakeCatalog struct {
	products []model.Product
	err      error
	calls    int
}

func (f *fakeCatalog) FetchProducts(context.Context) ([]model.Product, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	out := make([]model.Product, len(f.products))
	copy(out, f.products)
	return out, nil
}
