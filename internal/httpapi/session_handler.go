package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/andreasstove999/fresh-market/internal/catalog"
	"github.com/andreasstove999/fresh-market/internal/offers"
	"github.com/andreasstove999/fresh-market/internal/session"
)

func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	snap := h.sessions.Create(r.Context())
	writeJSON(w, http.StatusCreated, snap)
}

func (h *Handler) ChangeCategory(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionId")

	var body struct {
		Category string `json:"category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if !catalog.ValidCategory(body.Category) {
		writeError(w, http.StatusBadRequest, "invalid category")
		return
	}

	snap, err := h.sessions.ChangeCategory(r.Context(), sessionID, body.Category)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to change category")
		return
	}

	writeJSON(w, http.StatusOK, snap)
}

type productView struct {
	catalog.Product
	Quantity int             `json:"quantity"`
	Offers   []offers.Status `json:"offers"`
}

// SessionProducts returns the session's catalog snapshot, filtered by the
// optional search term and annotated with cart quantity and offer status per
// product.
func (h *Handler) SessionProducts(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionId")
	search := strings.ToLower(r.URL.Query().Get("search"))

	snap, err := h.sessions.Snapshot(sessionID)
	if err != nil {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}

	views := []productView{}
	for _, p := range snap.Products {
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		qty := snap.Cart[p.ID]
		views = append(views, productView{
			Product:  p,
			Quantity: qty,
			Offers:   h.engine.StatusFor(p, qty),
		})
	}

	writeJSON(w, http.StatusOK, views)
}
