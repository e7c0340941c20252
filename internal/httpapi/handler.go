package httpapi

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/andreasstove999/fresh-market/internal/events"
	"github.com/andreasstove999/fresh-market/internal/offers"
	"github.com/andreasstove999/fresh-market/internal/session"
)

type Handler struct {
	logger    *log.Logger
	catalog   session.Fetcher
	sessions  *session.Manager
	engine    *offers.Engine
	publisher events.Publisher
}

func NewHandler(logger *log.Logger, catalog session.Fetcher, sessions *session.Manager, engine *offers.Engine, publisher events.Publisher) *Handler {
	return &Handler{
		logger:    logger,
		catalog:   catalog,
		sessions:  sessions,
		engine:    engine,
		publisher: publisher,
	}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "storefront-service"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{
		"error": msg,
	})
}
