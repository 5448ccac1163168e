package model

import "tour-srv/pkg/locale"

// History roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single history entry. Insertion order is significant.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Session is the per-user conversation state blob. Slot fields are pointers:
// nil means "not yet known". Once a slot is set it is never cleared except
// by the explicit history reset.
type Session struct {
	Stage          Stage     `json:"stage"`
	Language       string    `json:"language"`
	DeparturePoint *string   `json:"departure_point,omitempty"`
	Destination    *string   `json:"destination_point,omitempty"`
	People         *int      `json:"people,omitempty"`
	Days           *int      `json:"days,omitempty"`
	History        []Message `json:"history"`
}

// NewSession returns the default state for a user with no stored session.
func NewSession() Session {
	return Session{
		Stage:    StageIdle,
		Language: locale.VI,
		History:  []Message{},
	}
}

// Lang returns the session language, defaulting to Vietnamese for blobs
// written before the language field existed.
func (s Session) Lang() string {
	if s.Language == "" {
		return locale.VI
	}
	return s.Language
}
