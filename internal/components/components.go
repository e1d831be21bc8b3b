package components

import (
	"context"
	"io"
	"log/slog"
	"time"

	"hallo/internal/api"
	"hallo/internal/config"
	"hallo/internal/service"
	"hallo/pkg/logger"
)

type Components struct {
	logger         *slog.Logger
	HttpServer     *api.Server
	stopBackground context.CancelFunc
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	// background goroutines (rate limiter sweeper) live until ShutdownAll
	bgCtx, stop := context.WithCancel(ctx)

	srv := service.NewService(service.NewGreetingService())

	httpServer := api.NewServer(bgCtx, cfg, logger, srv)
	logger.Info("Initialized server")

	return &Components{
		logger:         logger,
		HttpServer:     httpServer,
		stopBackground: stop,
	}, nil
}

// SetupLogger is used before the config is known, so it always logs at debug.
func SetupLogger(env string, w io.Writer) *slog.Logger {
	return logger.New(env, true, w)
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Component shutdown started")

	if c.stopBackground != nil {
		c.stopBackground()
	}

	c.logger.Info("All components stopped",
		slog.Duration("latency", time.Since(start)))
}
