package model_test

import (
	"encoding/json"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/shopspring/decimal"

	"github.com/fekuna/omnipos-catalog-sync/internal/model"
)

func TestProduct_DecodeCatalogRecord(t *testing.T) {
	c := qt.New(t)

	raw := `{"id":1,"title":"Essence Mascara Lash Princess","description":"ignored","category":"beauty",
		"price":9.99,"discountPercentage":7.17,"rating":4.94,"stock":5,"tags":["beauty"]}`

	var p model.Product
	c.Assert(json.Unmarshal([]byte(raw), &p), qt.IsNil)

	c.Assert(p.ID, qt.Equals, int64(1))
	c.Assert(p.Title, qt.Equals, "Essence Mascara Lash Princess")
	c.Assert(p.Category, qt.Equals, "beauty")
	c.Assert(p.Price.String(), qt.Equals, "9.99")
	c.Assert(p.Rating.String(), qt.Equals, "4.94")
	c.Assert(p.Stock, qt.Equals, 5)
}

func TestProduct_InventoryValueIsExact(t *testing.T) {
	tests := []struct {
		price string
		stock int
		want  string
	}{
		{price: "10.00", stock: 5, want: "50"},
		{price: "12.00", stock: 3, want: "36"},
		{price: "9.99", stock: 3, want: "29.97"},
		{price: "0.1", stock: 3, want: "0.3"},
		{price: "1899.99", stock: 0, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.price, func(t *testing.T) {
			c := qt.New(t)

			p := model.Product{Price: decimal.RequireFromString(tt.price), Stock: tt.stock}
			c.Assert(p.InventoryValue().Equal(decimal.RequireFromString(tt.want)), qt.IsTrue,
				qt.Commentf("got %s", p.InventoryValue()))
		})
	}
}

func TestProduct_ToInventoryRow(t *testing.T) {
	foo := model.Product{
		ID:       1,
		Title:    "Foo",
		Category: "beauty",
		Price:    decimal.RequireFromString("10.00"),
		Stock:    5,
		Rating:   decimal.RequireFromString("4.5"),
	}

	t.Run("value mode derives inventory value", func(t *testing.T) {
		c := qt.New(t)

		row, err := foo.ToInventoryRow(model.SyncModeValue)
		c.Assert(err, qt.IsNil)
		c.Assert(row.ID, qt.Equals, int64(1))
		c.Assert(row.Title, qt.Equals, "Foo")
		c.Assert(row.Category, qt.Equals, "beauty")
		c.Assert(row.Stock, qt.Equals, 5)
		c.Assert(row.InventoryValue.Equal(decimal.NewFromInt(50)), qt.IsTrue)
	})

	t.Run("base mode keeps raw fields only", func(t *testing.T) {
		c := qt.New(t)

		row, err := foo.ToInventoryRow(model.SyncModeBase)
		c.Assert(err, qt.IsNil)
		c.Assert(row.Price.Equal(foo.Price), qt.IsTrue)
		c.Assert(row.InventoryValue.IsZero(), qt.IsTrue)
	})

	t.Run("negative stock is rejected", func(t *testing.T) {
		c := qt.New(t)

		bad := foo
		bad.Stock = -1
		_, err := bad.ToInventoryRow(model.SyncModeValue)
		c.Assert(err, qt.ErrorIs, model.ErrNegativeStock)
	})
}

func TestParseSyncMode(t *testing.T) {
	c := qt.New(t)

	m, err := model.ParseSyncMode("value")
	c.Assert(err, qt.IsNil)
	c.Assert(m.TracksValue(), qt.IsTrue)

	m, err = model.ParseSyncMode("base")
	c.Assert(err, qt.IsNil)
	c.Assert(m.TracksValue(), qt.IsFalse)

	_, err = model.ParseSyncMode("delta")
	c.Assert(err, qt.ErrorMatches, `unknown sync mode "delta"`)
}
