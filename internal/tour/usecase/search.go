package usecase

import (
	"context"
	"strings"

	"tour-srv/internal/model"
	"tour-srv/internal/tour"
)

// Search - Fetch the catalog wholesale and filter it.
// Flow: fetch → per-record filter → output in source order.
// A fetch failure degrades to an empty result; the user still gets a reply.
func (uc *implUseCase) Search(ctx context.Context, input tour.SearchInput) tour.SearchOutput {
	catalog, err := uc.repo.FetchAll(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "tour.usecase.Search: catalog fetch failed, degrading to empty: %v", err)
		return tour.SearchOutput{Tours: []model.Tour{}, Degraded: true}
	}

	results := make([]model.Tour, 0, len(catalog))
	for _, t := range catalog {
		if uc.matches(t, input) {
			results = append(results, t)
		}
	}

	uc.l.Infof(ctx, "tour.usecase.Search: dep=%q dest=%q days=%d, catalog=%d, matched=%d",
		input.Departure, input.Destination, input.Days, len(catalog), len(results))

	return tour.SearchOutput{Tours: results, TotalFound: len(results)}
}

// matches applies the filter chain to one record. All text comparisons are
// case-insensitive substring matches so "Hà Nội" still hits "TP. Hà Nội".
func (uc *implUseCase) matches(t model.Tour, input tour.SearchInput) bool {
	// Records without a readable duration are excluded outright.
	duration, err := t.DurationDays()
	if err != nil {
		return false
	}

	if input.Departure != "" && !containsFold(t.Departure, input.Departure) {
		return false
	}

	// Destination also matches against the tour name: some tours only carry
	// the place in their title.
	if input.Destination != "" &&
		!containsFold(t.Destination, input.Destination) &&
		!containsFold(t.Name, input.Destination) {
		return false
	}

	// Days is a minimum-length filter, not an exact match.
	if input.Days > 0 && duration < input.Days {
		return false
	}

	// People is accepted but not filtered on: the catalog has no capacity
	// field. The checklist still collects it for the reply template.
	return true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
