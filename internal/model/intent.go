package model

// Intent is the extracted purpose of a single user message. It is derived
// fresh every turn and never stored.
type Intent string

const (
	IntentGreeting   Intent = "GREETING"
	IntentSearchTour Intent = "SEARCH_TOUR"
	IntentBookTour   Intent = "BOOK_TOUR"
	IntentUnknown    Intent = "UNKNOWN"
)

// ParseIntent maps a raw extractor value to a known intent. Anything
// unrecognized degrades to IntentUnknown.
func ParseIntent(raw string) Intent {
	switch Intent(raw) {
	case IntentGreeting, IntentSearchTour, IntentBookTour, IntentUnknown:
		return Intent(raw)
	default:
		return IntentUnknown
	}
}
