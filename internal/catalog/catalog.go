package catalog

import (
	"context"
	"errors"

	"github.com/fekuna/omnipos-catalog-sync/internal/model"
)

var (
	ErrUnexpectedStatus  = errors.New("unexpected catalog response status")
	ErrMalformedResponse = errors.New("malformed catalog response")
)

// Client is the extract side of a sync: one call returns the full product list.
type Client interface {
	FetchProducts(ctx context.Context) ([]model.Product, error)
}
