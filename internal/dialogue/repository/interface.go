package repository

import (
	"context"

	"tour-srv/internal/model"
)

// SessionRepository persists the per-user conversation state blob.
//
// Every mutation upstream is a read-modify-write of the whole blob; two
// concurrent turns for the same user race and the last write wins. This is
// a documented limitation, not something the backends resolve.
//
//go:generate mockery --name SessionRepository
type SessionRepository interface {
	Get(ctx context.Context, userID string) (model.Session, error)
	Save(ctx context.Context, userID string, session model.Session) error
	Delete(ctx context.Context, userID string) error
}
