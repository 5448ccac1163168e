package usecase

import (
	"tour-srv/internal/tour"
	"tour-srv/internal/tour/repository"
	"tour-srv/pkg/log"
)

type implUseCase struct {
	repo repository.CatalogRepository
	l    log.Logger
}

// New - Factory function
func New(repo repository.CatalogRepository, l log.Logger) tour.UseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
