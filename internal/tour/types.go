package tour

import "tour-srv/internal/model"

// SearchInput holds the filter criteria. Zero values mean "not given".
// People is collected by the dialogue checklist but is not applied as a
// filter; see the matcher.
type SearchInput struct {
	Departure   string
	Destination string
	People      int
	Days        int
}

// SearchOutput is the ordered result set, preserving catalog source order.
// Degraded is true when the catalog could not be fetched or parsed and the
// empty result is a fallback rather than a true no-match.
type SearchOutput struct {
	Tours      []model.Tour
	TotalFound int
	Degraded   bool
}
