// Package rest provides HTTP handlers for product-related operations.
package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	apperrors "github.com/abgdnv/storefront/internal/errors"
	"github.com/abgdnv/storefront/internal/platform/web"
	"github.com/abgdnv/storefront/internal/product/service"
	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.ProductService
	logger  *slog.Logger
}

// NewHandler creates a new product Handler with the provided service.
func NewHandler(service service.ProductService, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger.With("component", "product_rest"),
	}
}

// RegisterRoutes registers the HTTP routes for the product catalog.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1/products", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.FindByID)
			r.Put("/", h.Update)
			r.Delete("/", h.DeleteByID)
		})
	})
}

// FindByID retrieves a product by its ID.
func (h *Handler) FindByID(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}

	mLogger.DebugContext(r.Context(), "Received request to find product by ID", "ID", id)
	found, err := h.service.FindByID(id)
	if err != nil {
		h.respondServiceError(w, r, mLogger, err, id, "retrieve")
		return
	}
	mLogger.DebugContext(r.Context(), "Successfully retrieved product", "ID", found.ID, "Name", found.Name)
	web.RespondJSON(w, mLogger, http.StatusOK, found)
}

// List retrieves all products in creation order.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	list, err := h.service.List()
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error retrieving product list", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to fetch products")
		return
	}
	mLogger.DebugContext(r.Context(), "Successfully retrieved product list", "count", len(list))
	web.RespondJSON(w, mLogger, http.StatusOK, list)
}

// Create handles the creation of a new product.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	var productCreateDto service.ProductCreateDto
	if err := json.NewDecoder(r.Body).Decode(&productCreateDto); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}
	mLogger.DebugContext(r.Context(), "Received request to create product", "product", productCreateDto)

	newProduct, err := h.service.Create(productCreateDto)
	if err != nil {
		h.respondServiceError(w, r, mLogger, err, productCreateDto.ID, "create")
		return
	}
	mLogger.InfoContext(r.Context(), "Product created successfully", "ID", newProduct.ID, "Name", newProduct.Name)
	web.RespondJSON(w, mLogger, http.StatusCreated, newProduct)
}

// Update overwrites the mutable fields of a product.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}
	mLogger.DebugContext(r.Context(), "Received request to update product", "ID", id)
	var productUpdateDto service.ProductUpdateDto
	if err := json.NewDecoder(r.Body).Decode(&productUpdateDto); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.service.Update(id, productUpdateDto)
	if err != nil {
		h.respondServiceError(w, r, mLogger, err, id, "update")
		return
	}
	mLogger.InfoContext(r.Context(), "Product updated successfully", "ID", updated.ID, "Name", updated.Name)
	web.RespondJSON(w, mLogger, http.StatusOK, updated)
}

// DeleteByID deletes a product by its ID.
func (h *Handler) DeleteByID(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}
	mLogger.DebugContext(r.Context(), "Received request to delete product", "ID", id)
	if err := h.service.Delete(id); err != nil {
		h.respondServiceError(w, r, mLogger, err, id, "delete")
		return
	}
	mLogger.InfoContext(r.Context(), "Product deleted successfully", "ID", id)
	w.WriteHeader(http.StatusNoContent)
}

// respondServiceError maps the catalog error kinds to HTTP statuses.
func (h *Handler) respondServiceError(w http.ResponseWriter, r *http.Request, mLogger *slog.Logger, err error, id int, action string) {
	var vErr *apperrors.ValidationError
	switch {
	case errors.As(err, &vErr):
		mLogger.WarnContext(r.Context(), "Validation error occurred", "ID", id, "field", vErr.Field, "reason", vErr.Reason)
		web.RespondValidationError(w, mLogger, vErr)
	case errors.Is(err, apperrors.ErrNotFound):
		mLogger.WarnContext(r.Context(), "Product not found", "ID", id, "action", action)
		web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Product with ID %d not found", id))
	case errors.Is(err, apperrors.ErrDuplicateKey):
		mLogger.WarnContext(r.Context(), "Product already exists", "ID", id)
		web.RespondError(w, mLogger, http.StatusConflict, fmt.Sprintf("Product with ID %d already exists", id))
	default:
		mLogger.ErrorContext(r.Context(), "Error handling product request", "ID", id, "action", action, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, fmt.Sprintf("Failed to %s product with ID %d", action, id))
	}
}

// loggerWithReqID creates a logger with the request ID from the context.
func (h *Handler) loggerWithReqID(r *http.Request) *slog.Logger {
	reqID, _ := web.GetRequestID(r.Context())
	return h.logger.With("request_id", reqID)
}
