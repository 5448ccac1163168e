package httpserver

import (
	"errors"
	"time"

	"tour-srv/config"
	"tour-srv/pkg/log"
	pkgRedis "tour-srv/pkg/redis"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// Service Configuration
	config *config.Config

	// Session storage. Nil means the in-memory backend is used.
	redisClient pkgRedis.IRedis
	sessionTTL  time.Duration
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string

	// Service Configuration
	Config *config.Config

	// Session storage. Leave RedisClient nil to store sessions in memory.
	RedisClient pkgRedis.IRedis
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		// Server Configuration
		l:           logger,
		gin:         gin.Default(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,

		// Service Configuration
		config: cfg.Config,

		// Session storage
		redisClient: cfg.RedisClient,
		sessionTTL:  time.Duration(cfg.Config.Session.TTL) * time.Second,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv HTTPServer) validate() error {
	// Server Configuration
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}

	// Service Configuration
	if srv.config == nil {
		return errors.New("config is required")
	}

	// redisClient is optional; sessions fall back to the in-memory store

	return nil
}
