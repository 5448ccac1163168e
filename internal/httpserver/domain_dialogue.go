package httpserver

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	dialogueHTTP "tour-srv/internal/dialogue/delivery/http"
	"tour-srv/internal/dialogue/repository"
	memoryRepo "tour-srv/internal/dialogue/repository/memory"
	redisRepo "tour-srv/internal/dialogue/repository/redis"
	dialogueUsecase "tour-srv/internal/dialogue/usecase"
	"tour-srv/internal/middleware"
	"tour-srv/internal/tour"
	"tour-srv/pkg/ollama"
)

func (srv *HTTPServer) setupDialogueDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware, tourUC tour.UseCase) error {
	var repo repository.SessionRepository
	if srv.redisClient != nil {
		repo = redisRepo.New(srv.redisClient, srv.l, srv.sessionTTL)
	} else {
		repo = memoryRepo.New()
	}

	llm := ollama.NewOllama(ollama.OllamaConfig{
		BaseURL: srv.config.Ollama.URL,
		Model:   srv.config.Ollama.Model,
		Timeout: time.Duration(srv.config.Ollama.ChatTimeout) * time.Second,
	})

	uc := dialogueUsecase.New(repo, tourUC, llm, srv.l, dialogueUsecase.Config{
		IntentTimeout: time.Duration(srv.config.Ollama.IntentTimeout) * time.Second,
		ChatTimeout:   time.Duration(srv.config.Ollama.ChatTimeout) * time.Second,
	})

	handler := dialogueHTTP.New(srv.l, uc)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Dialogue domain registered")
	return nil
}
