package memory

import (
	"context"
	"encoding/json"
	"fmt"

	"tour-srv/internal/dialogue/repository"
	"tour-srv/internal/model"
)

// Sessions are stored as serialized blobs, same as the redis backend, so
// callers never share slices with the store.

func (r *implSessionRepository) Get(ctx context.Context, userID string) (model.Session, error) {
	r.mu.RLock()
	data, ok := r.sessions[userID]
	r.mu.RUnlock()
	if !ok {
		return model.Session{}, repository.ErrSessionNotFound
	}

	var session model.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return model.Session{}, err
	}
	return session, nil
}

func (r *implSessionRepository) Save(ctx context.Context, userID string, session model.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("%w: %v", repository.ErrEncodeFailed, err)
	}

	r.mu.Lock()
	r.sessions[userID] = data
	r.mu.Unlock()
	return nil
}

func (r *implSessionRepository) Delete(ctx context.Context, userID string) error {
	r.mu.Lock()
	delete(r.sessions, userID)
	r.mu.Unlock()
	return nil
}
