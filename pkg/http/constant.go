package http

import "time"

const (
	// DefaultTimeout caps a single request end to end.
	DefaultTimeout = 30 * time.Second
	// DefaultRetries is the number of extra attempts after the first.
	DefaultRetries = 3
	// DefaultRetryWait is the pause between attempts.
	DefaultRetryWait = 1 * time.Second
)

// DefaultConfig returns a ClientConfig with the package defaults.
func DefaultConfig() ClientConfig {
	return ClientConfig{
		Timeout:   DefaultTimeout,
		Retries:   DefaultRetries,
		RetryWait: DefaultRetryWait,
	}
}
