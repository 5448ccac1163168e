package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"tour-srv/internal/model"
	"tour-srv/internal/tour"
)

// FetchAll retrieves the full catalog. The source either returns a JSON
// array or wraps the list in an object under "data"; any other shape is
// treated as malformed.
func (r *implCatalogRepository) FetchAll(ctx context.Context) ([]model.Tour, error) {
	body, statusCode, err := r.httpClient.Get(ctx, r.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", tour.ErrCatalogUnavailable, err)
	}
	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", tour.ErrCatalogUnavailable, statusCode)
	}

	items, err := decodeItems(body)
	if err != nil {
		return nil, err
	}

	tours := make([]model.Tour, 0, len(items))
	for _, item := range items {
		tours = append(tours, model.NewTourFromRaw(item))
	}
	return tours, nil
}

func decodeItems(body []byte) ([]json.RawMessage, error) {
	var list []json.RawMessage
	if err := json.Unmarshal(body, &list); err == nil {
		return list, nil
	}

	var wrapped struct {
		Data []json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &wrapped); err == nil && wrapped.Data != nil {
		return wrapped.Data, nil
	}

	return nil, tour.ErrCatalogMalformed
}
