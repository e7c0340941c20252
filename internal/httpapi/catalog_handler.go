package httpapi

import (
	"net/http"

	"github.com/andreasstove999/fresh-market/internal/catalog"
)

// ListProducts serves the normalized catalog for a category without touching
// any session state. Defaults to "all".
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		category = catalog.CategoryAll
	}
	if !catalog.ValidCategory(category) {
		writeError(w, http.StatusBadRequest, "invalid category")
		return
	}

	products := h.catalog.FetchProducts(r.Context(), category)
	writeJSON(w, http.StatusOK, products)
}
