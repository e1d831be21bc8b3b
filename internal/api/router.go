package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"hallo/internal/api/handlers/http/home"
	"hallo/internal/config"
	"hallo/internal/middleware"
	"hallo/internal/service"
	"hallo/pkg/e"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(ctx context.Context, cfg *config.Config, logger *slog.Logger, svc *service.Service) *Server {
	homeHandler := home.NewHandler(logger, svc)

	r := InitRouter(ctx, cfg, homeHandler, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(ctx context.Context, cfg *config.Config, homeHandler *home.Handler, logger *slog.Logger) *chi.Mux {
	r := chi.NewMux()

	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(logger))
	r.Use(chimw.Recoverer)

	if cfg.RateLimit.Enabled() {
		r.Use(middleware.Limit(ctx, cfg.RateLimit.RPS, cfg.RateLimit.Burst, cfg.RateLimit.TTL, logger))
	}

	// HEAD / is served by the GET handler; net/http drops the body.
	r.Use(chimw.GetHead)

	r.Get("/", homeHandler.Home)

	return r
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Http.Port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("Starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- e.Wrap("api.Server.Run.ListenAndServe", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("Shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Server shutdown failed", slog.Any("error", err))
			return e.WrapError(shutdownCtx, "api.Server.Run.Shutdown", err)
		}
		return nil

	case err := <-errChan:
		return err
	}
}
