package http

import (
	"errors"

	"tour-srv/internal/dialogue"
	pkgErrors "tour-srv/pkg/errors"
)

var (
	errInvalidBody     = pkgErrors.NewHTTPError(400, "Invalid request body")
	errUserIDRequired  = pkgErrors.NewHTTPError(400, "User ID is required")
	errMessageRequired = pkgErrors.NewHTTPError(400, "Message is required")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, dialogue.ErrUserIDRequired):
		return errUserIDRequired
	case errors.Is(err, dialogue.ErrMessageRequired):
		return errMessageRequired
	default:
		return err
	}
}
