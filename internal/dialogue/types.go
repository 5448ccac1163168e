package dialogue

import "tour-srv/internal/model"

const (
	// MaxPromptHistory is how many trailing history entries feed the
	// intent extraction prompt.
	MaxPromptHistory = 6

	// ServiceUnavailableReply is the fixed fallback when the open-ended
	// chat collaborator is unreachable.
	ServiceUnavailableReply = "Service unavailable."
)

type ChatInput struct {
	UserID  string
	Message string
}

type ChatOutput struct {
	Reply string
}

type HistoryInput struct {
	UserID string
}

type HistoryOutput struct {
	UserID  string
	History []model.Message
}

// ExtractedIntent is the normalized per-turn extraction result. Nil fields
// were not present in the message; they never overwrite known state. It is
// merged into the session and discarded.
type ExtractedIntent struct {
	Intent         model.Intent
	DeparturePoint *string
	Destination    *string
	People         *int
	Days           *int
	Language       *string
}
