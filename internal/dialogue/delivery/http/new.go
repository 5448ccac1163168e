package http

import (
	"tour-srv/internal/dialogue"
	"tour-srv/internal/middleware"
	"tour-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - Interface cho dialogue HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l  log.Logger
	uc dialogue.UseCase
}

// New - Factory
func New(l log.Logger, uc dialogue.UseCase) Handler {
	return &handler{l: l, uc: uc}
}
