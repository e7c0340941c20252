package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/andreasstove999/fresh-market/internal/contracts"
	"github.com/andreasstove999/fresh-market/internal/offers"
	"github.com/andreasstove999/fresh-market/internal/session"
)

type cartLine struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	LineTotal float64 `json:"lineTotal"`
}

type cartResponse struct {
	SessionID  string     `json:"sessionId"`
	Items      []cartLine `json:"items"`
	TotalItems int        `json:"totalItems"`
	offers.CartDetails
}

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionId")

	snap, err := h.sessions.Snapshot(sessionID)
	if err != nil {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}

	writeJSON(w, http.StatusOK, h.cartResponseFor(snap))
}

func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionId")

	var body struct {
		ProductID string `json:"productId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if body.ProductID == "" {
		writeError(w, http.StatusBadRequest, "missing productId")
		return
	}

	snap, err := h.sessions.AddToCart(sessionID, body.ProductID)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrNotFound):
			writeError(w, http.StatusNotFound, "session not found")
		case errors.Is(err, session.ErrUnknownProduct):
			writeError(w, http.StatusNotFound, "product not found")
		case errors.Is(err, session.ErrOutOfStock):
			writeError(w, http.StatusConflict, "out of stock")
		default:
			writeError(w, http.StatusInternalServerError, "failed to add item")
		}
		return
	}

	writeJSON(w, http.StatusOK, h.cartResponseFor(snap))
}

func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionId")
	productID := chi.URLParam(r, "productId")

	// Removing an id that is not in the cart is a no-op, so the only failure
	// here is an unknown session.
	snap, err := h.sessions.RemoveFromCart(sessionID, productID)
	if err != nil {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}

	writeJSON(w, http.StatusOK, h.cartResponseFor(snap))
}

type checkoutResponse struct {
	Status string `json:"status"`
	offers.CartDetails
}

func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionId")

	snap, err := h.sessions.Snapshot(sessionID)
	if err != nil {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	if len(snap.Cart) == 0 {
		writeError(w, http.StatusConflict, "cart is empty")
		return
	}

	details := h.engine.ComputeCartDetails(snap.Products, snap.Cart)

	payload := contracts.CheckoutCompletedPayload{
		SessionID:     snap.SessionID,
		Lines:         []contracts.CheckoutLine{},
		FreeItems:     []contracts.FreeLine{},
		Subtotal:      details.Subtotal,
		TotalDiscount: details.TotalDiscount,
		TotalAmount:   details.Total,
		Timestamp:     time.Now().UTC(),
	}
	for _, p := range snap.Products {
		qty := snap.Cart[p.ID]
		if qty <= 0 {
			continue
		}
		payload.Lines = append(payload.Lines, contracts.CheckoutLine{
			ProductID: p.ID,
			Name:      p.Name,
			Quantity:  qty,
			UnitPrice: p.Price,
		})
	}
	for _, fi := range details.FreeItems {
		payload.FreeItems = append(payload.FreeItems, contracts.FreeLine{
			ProductID: fi.Product.ID,
			Name:      fi.Product.Name,
			Quantity:  fi.Quantity,
			OfferID:   fi.OfferID,
		})
	}

	if err := h.publisher.PublishCheckoutCompleted(r.Context(), payload); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to publish checkout completed event")
		return
	}

	if err := h.sessions.ClearCart(sessionID); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to clear cart")
		return
	}

	writeJSON(w, http.StatusOK, checkoutResponse{
		Status:      "checkout completed",
		CartDetails: details,
	})
}

func (h *Handler) cartResponseFor(snap session.Snapshot) cartResponse {
	resp := cartResponse{
		SessionID:   snap.SessionID,
		Items:       []cartLine{},
		TotalItems:  snap.TotalItems,
		CartDetails: h.engine.ComputeCartDetails(snap.Products, snap.Cart),
	}

	// Catalog order keeps line order stable across reads.
	for _, p := range snap.Products {
		qty := snap.Cart[p.ID]
		if qty <= 0 {
			continue
		}
		resp.Items = append(resp.Items, cartLine{
			ProductID: p.ID,
			Name:      p.Name,
			Quantity:  qty,
			UnitPrice: p.Price,
			LineTotal: p.Price * float64(qty),
		})
	}

	return resp
}
