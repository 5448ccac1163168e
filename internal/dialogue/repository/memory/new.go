package memory

import (
	"sync"

	"tour-srv/internal/dialogue/repository"
)

type implSessionRepository struct {
	mu       sync.RWMutex
	sessions map[string][]byte
}

// New - Factory. In-process fallback backend: sessions are lost on restart.
func New() repository.SessionRepository {
	return &implSessionRepository{
		sessions: make(map[string][]byte),
	}
}
