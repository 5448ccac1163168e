package repository

import "errors"

var (
	// ErrSessionNotFound - Chưa có session cho user này
	ErrSessionNotFound = errors.New("repository: session not found")

	// ErrEncodeFailed - Không serialize được session blob
	ErrEncodeFailed = errors.New("repository: failed to encode session")
)
