package model

// Stage is the coarse conversational mode.
type Stage string

const (
	StageIdle      Stage = "IDLE"
	StageBooking   Stage = "BOOKING"
	StageSearching Stage = "SEARCHING"
)

// NextStage is the stage transition table, evaluated once per turn against
// the current turn's intent. Transitions are monotonic within a flow:
//
//	any       + BOOK_TOUR         -> BOOKING
//	any       + SEARCH_TOUR       -> SEARCHING
//	SEARCHING + any other intent  -> SEARCHING (search mode is sticky)
//	BOOKING   + GREETING/UNKNOWN  -> BOOKING   (terminal until reset)
//
// No transition returns to IDLE; only the history reset does.
func NextStage(current Stage, intent Intent) Stage {
	switch intent {
	case IntentBookTour:
		return StageBooking
	case IntentSearchTour:
		return StageSearching
	default:
		if current == "" {
			return StageIdle
		}
		return current
	}
}

// InSearchFlow reports whether the search checklist applies: the message
// asked for a search or the session is already in search mode. Callers
// branch on the higher-priority intents first.
func InSearchFlow(current Stage, intent Intent) bool {
	return intent == IntentSearchTour || current == StageSearching
}
