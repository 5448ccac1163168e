package main

import (
	"context"
	"fmt"

	"tour-srv/config"
	configRedis "tour-srv/config/redis"
	"tour-srv/internal/httpserver"
	"tour-srv/pkg/log"
	pkgRedis "tour-srv/pkg/redis"
)

// @title       Tour Assistant API
// @description Conversational tour search and booking assistant API documentation.
// @version     1
// @BasePath    /
func main() {
	// 1. Load configuration
	// Reads config from YAML file and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	// 3. Initialize Redis session storage. An unreachable Redis drops the
	// service to the in-memory backend instead of failing startup.
	var redisClient pkgRedis.IRedis
	if cfg.Session.Backend == "redis" {
		redisClient, err = configRedis.Connect(ctx, cfg.Redis)
		if err != nil {
			logger.Warnf(ctx, "Redis unavailable, falling back to in-memory sessions: %v", err)
			redisClient = nil
		} else {
			defer func() { _ = configRedis.Disconnect() }()
			logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)
		}
	}

	// 4. Initialize HTTP server
	// Main application server that handles all HTTP requests and routes
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		// Service Configuration
		Config: cfg,

		// Session storage
		RedisClient: redisClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}
