package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/AnujGadekar1/verto-eshop/internal/backend"
	"github.com/AnujGadekar1/verto-eshop/internal/cart"
	"github.com/AnujGadekar1/verto-eshop/internal/catalog"
	"github.com/AnujGadekar1/verto-eshop/internal/domain"
	"github.com/go-chi/chi/v5"
)

type CartHandler struct {
	store   *cart.Store
	catalog *catalog.Service
}

func NewCartHandler(store *cart.Store, catalog *catalog.Service) *CartHandler {
	return &CartHandler{
		store:   store,
		catalog: catalog,
	}
}

type AddItemRequestDTO struct {
	ProductID string `json:"productId"`
}

type SetQuantityRequestDTO struct {
	Quantity int `json:"quantity"`
}

type CartResponseDTO struct {
	Items         []domain.LineItem `json:"items"`
	TotalCents    int64             `json:"totalCents"`
	IsCheckingOut bool              `json:"isCheckingOut"`
	IsOpen        bool              `json:"isOpen"`
	LastOrderID   string            `json:"lastOrderId,omitempty"`
}

func (h *CartHandler) cartResponse() CartResponseDTO {
	return CartResponseDTO{
		Items:         h.store.Items(),
		TotalCents:    h.store.TotalCents(),
		IsCheckingOut: h.store.IsCheckingOut(),
		IsOpen:        h.store.IsOpen(),
		LastOrderID:   h.store.LastOrderID(),
	}
}

// GET /api/cart
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.cartResponse())
}

// POST /api/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ProductID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "productId is required")
		return
	}

	product, found, err := h.catalog.Find(r.Context(), req.ProductID)
	if err != nil {
		respondError(w, http.StatusServiceUnavailable, "catalog_unavailable", "could not load the catalog")
		return
	}
	if !found {
		respondError(w, http.StatusNotFound, "unknown_product", "no such product")
		return
	}

	h.store.AddItem(r.Context(), product)
	respondJSON(w, http.StatusCreated, h.cartResponse())
}

// PUT /api/cart/items/{productID}
func (h *CartHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	var req SetQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	h.store.SetQuantity(r.Context(), productID, req.Quantity)
	respondJSON(w, http.StatusOK, h.cartResponse())
}

// DELETE /api/cart/items/{productID}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")
	h.store.RemoveItem(r.Context(), productID)
	respondJSON(w, http.StatusOK, h.cartResponse())
}

// POST /api/cart/checkout
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	h.store.Checkout(r.Context())
	respondJSON(w, http.StatusOK, h.cartResponse())
}

// POST /api/cart/toggle
func (h *CartHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	h.store.ToggleCart()
	respondJSON(w, http.StatusOK, h.cartResponse())
}

// DELETE /api/cart/last-order
func (h *CartHandler) ClearLastOrder(w http.ResponseWriter, r *http.Request) {
	h.store.ClearLastOrder()
	respondJSON(w, http.StatusOK, h.cartResponse())
}

// ProductHandler serves the catalog.
type ProductHandler struct {
	catalog *catalog.Service
}

func NewProductHandler(catalog *catalog.Service) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

// GET /api/products. An unreachable backend is reported as 503, distinct
// from a reachable backend with an empty catalog.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.Products(r.Context())
	if err != nil {
		if errors.Is(err, backend.ErrUnavailable) {
			respondError(w, http.StatusServiceUnavailable, "backend_unavailable", "shop backend unreachable")
			return
		}
		respondError(w, http.StatusBadGateway, "catalog_error", "could not load the catalog")
		return
	}
	if products == nil {
		products = []domain.Product{}
	}
	respondJSON(w, http.StatusOK, products)
}

// NotificationHandler exposes the toast queue.
type NotificationHandler struct {
	store NotificationStore
}

// NotificationStore is the slice of notification.Store the handler needs.
type NotificationStore interface {
	Notifications() []domain.Notification
	Dismiss(id int64)
}

func NewNotificationHandler(store NotificationStore) *NotificationHandler {
	return &NotificationHandler{store: store}
}

// GET /api/notifications
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.store.Notifications())
}

// DELETE /api/notifications/{id}
func (h *NotificationHandler) Dismiss(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_id", "notification id must be numeric")
		return
	}
	h.store.Dismiss(id)
	w.WriteHeader(http.StatusNoContent)
}
