package catalog

import (
	"time"

	"tour-srv/internal/tour/repository"
	pkghttp "tour-srv/pkg/http"
	"tour-srv/pkg/log"
)

// Config holds the catalog source settings.
type Config struct {
	URL     string
	Timeout time.Duration
}

type implCatalogRepository struct {
	l          log.Logger
	url        string
	httpClient pkghttp.IClient
}

// New - Factory. Fetches are one-shot within the configured timeout.
func New(l log.Logger, cfg Config) repository.CatalogRepository {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &implCatalogRepository{
		l:   l,
		url: cfg.URL,
		httpClient: pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout: cfg.Timeout,
			Retries: 0,
		}),
	}
}
