package httpserver

import (
	"context"
	"time"

	"tour-srv/internal/tour"
	catalogRepo "tour-srv/internal/tour/repository/catalog"
	tourUsecase "tour-srv/internal/tour/usecase"
)

func (srv *HTTPServer) setupTourDomain(ctx context.Context) tour.UseCase {
	repo := catalogRepo.New(srv.l, catalogRepo.Config{
		URL:     srv.config.Catalog.URL,
		Timeout: time.Duration(srv.config.Catalog.Timeout) * time.Second,
	})

	uc := tourUsecase.New(repo, srv.l)

	srv.l.Infof(ctx, "Tour domain registered")
	return uc
}
