package home

import (
	"context"
	"log/slog"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Greeter interface {
	Greeting(ctx context.Context) string
}

type Handler struct {
	logger  *slog.Logger
	Greeter Greeter
}

func NewHandler(logger *slog.Logger, greeter Greeter) *Handler {
	return &Handler{
		logger:  logger,
		Greeter: greeter,
	}
}

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	h.logger.InfoContext(ctx, "inside home", slog.String("request_id", chimw.GetReqID(ctx)))

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(h.Greeter.Greeting(ctx)))
}
