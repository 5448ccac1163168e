package redis

import (
	"time"

	"tour-srv/internal/dialogue/repository"
	"tour-srv/pkg/log"
	pkgRedis "tour-srv/pkg/redis"
)

type implSessionRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
	ttl   time.Duration
}

// New - Factory. TTL of zero keeps sessions forever.
func New(redis pkgRedis.IRedis, l log.Logger, ttl time.Duration) repository.SessionRepository {
	return &implSessionRepository{
		redis: redis,
		l:     l,
		ttl:   ttl,
	}
}
