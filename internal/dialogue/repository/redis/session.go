package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"tour-srv/internal/dialogue/repository"
	"tour-srv/internal/model"
)

func sessionKey(userID string) string {
	return fmt.Sprintf("session:%s", userID)
}

func (r *implSessionRepository) Get(ctx context.Context, userID string) (model.Session, error) {
	data, err := r.redis.Get(ctx, sessionKey(userID))
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return model.Session{}, repository.ErrSessionNotFound
		}
		return model.Session{}, err
	}

	var session model.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		r.l.Errorf(ctx, "dialogue.repository.redis.Get: failed to unmarshal session blob: %v", err)
		return model.Session{}, err
	}
	return session, nil
}

func (r *implSessionRepository) Save(ctx context.Context, userID string, session model.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("%w: %v", repository.ErrEncodeFailed, err)
	}
	if err := r.redis.Set(ctx, sessionKey(userID), data, r.ttl); err != nil {
		r.l.Errorf(ctx, "dialogue.repository.redis.Save: failed to save session: %v", err)
		return err
	}
	return nil
}

func (r *implSessionRepository) Delete(ctx context.Context, userID string) error {
	return r.redis.Delete(ctx, sessionKey(userID))
}
