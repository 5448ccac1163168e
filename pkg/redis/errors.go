package redis

import (
	"errors"
	"time"
)

var (
	// ErrHostRequired is returned when no host is configured.
	ErrHostRequired = errors.New("redis: host is required")
	// ErrInvalidPort is returned for a port outside 1-65535.
	ErrInvalidPort = errors.New("redis: invalid port")
)

// DefaultConnectTimeout bounds the initial connection check.
const DefaultConnectTimeout = 5 * time.Second
