package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var ErrNegativeStock = errors.New("stock must not be negative")

// Product is one record of the remote catalog. Fields the job does not
// persist are ignored when decoding.
type Product struct {
	ID       int64           `json:"id"`
	Title    string          `json:"title"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Stock    int             `json:"stock"`
	Rating   decimal.Decimal `json:"rating"`
}

// InventoryValue is price times stock, exact.
func (p Product) InventoryValue() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Stock)))
}

// InventoryRow mirrors a product_inventory row. LastUpdated is owned by the
// store and only populated on reads.
type InventoryRow struct {
	ID             int64           `db:"id"`
	Title          string          `db:"title"`
	Category       string          `db:"category"`
	Price          decimal.Decimal `db:"price"`
	Stock          int             `db:"stock"`
	Rating         decimal.Decimal `db:"rating"`
	InventoryValue decimal.Decimal `db:"inventory_value"`
	LastUpdated    time.Time       `db:"last_updated"`
}

// ToInventoryRow is the transform step. InventoryValue stays zero in base mode.
func (p Product) ToInventoryRow(mode SyncMode) (InventoryRow, error) {
	if p.Stock < 0 {
		return InventoryRow{}, fmt.Errorf("product %d: %w (got %d)", p.ID, ErrNegativeStock, p.Stock)
	}

	row := InventoryRow{
		ID:       p.ID,
		Title:    p.Title,
		Category: p.Category,
		Price:    p.Price,
		Stock:    p.Stock,
		Rating:   p.Rating,
	}
	if mode.TracksValue() {
		row.InventoryValue = p.InventoryValue()
	}
	return row, nil
}
