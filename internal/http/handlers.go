package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/frostline/storefront/internal/cart"
	"github.com/frostline/storefront/internal/catalog"
	"github.com/frostline/storefront/internal/order"
)

type Handler struct {
	catalog *catalog.Service
	carts   *cart.Manager
	orders  *order.Service
}

func NewHandler(catalogSvc *catalog.Service, carts *cart.Manager, orders *order.Service) *Handler {
	return &Handler{catalog: catalogSvc, carts: carts, orders: orders}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "storefront"})
}

// ListProducts serves the filtered, sorted catalog view. Active filters come
// from the query string; see catalog.ParseQuery for the parameter set.
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	filters, sortOption := catalog.ParseQuery(r.URL.Query())
	products := h.catalog.List(filters, sortOption)

	writeJSON(w, http.StatusOK, map[string]any{
		"products": products,
		"count":    len(products),
	})
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")
	p, err := h.catalog.Get(productID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			writeError(w, http.StatusNotFound, "product not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to load product")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "missing userId")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	store, err := h.carts.ForUser(ctx, userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load cart")
		return
	}

	writeJSON(w, http.StatusOK, store.Snapshot())
}

func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "missing userId")
		return
	}

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

	// Cart lines always carry catalog data, so an unknown product is a 404
	// rather than a half-filled line.
	p, err := h.catalog.Get(body.ProductID)
	if err != nil {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	store, err := h.carts.ForUser(ctx, userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load cart")
		return
	}

	state := store.AddItem(ctx, cart.Line{
		ProductID:   p.ID,
		Title:       p.Title,
		Price:       p.Price,
		MRP:         p.MRP,
		DiscountPct: p.DiscountPct,
		Image:       p.Image,
		Brand:       p.Brand,
		Category:    p.Category,
	})

	writeJSON(w, http.StatusOK, state)
}

func (h *Handler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	productID := chi.URLParam(r, "productId")
	if userID == "" || productID == "" {
		writeError(w, http.StatusBadRequest, "missing userId or productId")
		return
	}

	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	store, err := h.carts.ForUser(ctx, userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load cart")
		return
	}
	if !store.Contains(productID) {
		writeError(w, http.StatusNotFound, "item not in cart")
		return
	}

	writeJSON(w, http.StatusOK, store.UpdateQuantity(ctx, productID, body.Quantity))
}

func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	productID := chi.URLParam(r, "productId")
	if userID == "" || productID == "" {
		writeError(w, http.StatusBadRequest, "missing userId or productId")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	store, err := h.carts.ForUser(ctx, userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load cart")
		return
	}

	writeJSON(w, http.StatusOK, store.RemoveItem(ctx, productID))
}

func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "missing userId")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	store, err := h.carts.ForUser(ctx, userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load cart")
		return
	}

	writeJSON(w, http.StatusOK, store.Clear(ctx))
}

func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "missing userId")
		return
	}

	var body struct {
		ShippingAddress string `json:"shippingAddress"`
		PaymentMethod   string `json:"paymentMethod"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	// Wide timeout: includes the simulated payment delay.
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	o, err := h.orders.Checkout(ctx, userID, body.ShippingAddress, body.PaymentMethod)
	if err != nil {
		if errors.Is(err, order.ErrEmptyCart) {
			writeError(w, http.StatusBadRequest, "cart is empty")
			return
		}
		writeError(w, http.StatusInternalServerError, "checkout failed")
		return
	}

	writeJSON(w, http.StatusCreated, o)
}

func (h *Handler) Confirmation(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "missing userId")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	o, err := h.orders.Confirm(ctx, userID)
	if err != nil {
		if errors.Is(err, order.ErrNoOrder) {
			writeError(w, http.StatusNotFound, "no order details found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to resolve order")
		return
	}

	writeJSON(w, http.StatusOK, o)
}

func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "missing userId")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	orders, err := h.orders.Orders(ctx, userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load orders")
		return
	}
	if orders == nil {
		orders = []order.Order{}
	}

	writeJSON(w, http.StatusOK, orders)
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
