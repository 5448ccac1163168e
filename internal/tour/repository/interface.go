package repository

import (
	"context"

	"tour-srv/internal/model"
)

// CatalogRepository fetches the tour catalog wholesale from the external
// source. Order of the returned slice is the source order.
type CatalogRepository interface {
	FetchAll(ctx context.Context) ([]model.Tour, error)
}
