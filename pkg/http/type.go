package http

import (
	"net/http"
	"time"
)

// ClientConfig holds the HTTP client knobs. Retries counts extra
// attempts, so 3 means up to 4 requests on the wire.
type ClientConfig struct {
	Timeout   time.Duration
	Retries   int
	RetryWait time.Duration
}

type clientImpl struct {
	client *http.Client
	config ClientConfig
}
