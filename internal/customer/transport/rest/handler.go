// Package rest provides HTTP handlers for customer-related operations.
package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/abgdnv/storefront/internal/customer/service"
	apperrors "github.com/abgdnv/storefront/internal/errors"
	"github.com/abgdnv/storefront/internal/platform/web"
	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.CustomerService
	logger  *slog.Logger
}

func NewHandler(service service.CustomerService, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger.With("component", "customer_rest"),
	}
}

// RegisterRoutes registers the HTTP routes for the customer directory.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1/customers", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.FindByID)
			r.Put("/", h.Update)
			r.Delete("/", h.DeleteByID)
		})
	})
}

func (h *Handler) FindByID(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}
	found, err := h.service.FindByID(id)
	if err != nil {
		h.respondServiceError(w, r, mLogger, err, id, "retrieve")
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, found)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	list, err := h.service.List()
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error retrieving customer list", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to fetch customers")
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, list)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	var customerCreateDto service.CustomerCreateDto
	if err := json.NewDecoder(r.Body).Decode(&customerCreateDto); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.service.Create(customerCreateDto)
	if err != nil {
		h.respondServiceError(w, r, mLogger, err, customerCreateDto.ID, "create")
		return
	}
	mLogger.InfoContext(r.Context(), "Customer created successfully", "ID", created.ID)
	web.RespondJSON(w, mLogger, http.StatusCreated, created)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}
	var customerUpdateDto service.CustomerUpdateDto
	if err := json.NewDecoder(r.Body).Decode(&customerUpdateDto); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.service.Update(id, customerUpdateDto)
	if err != nil {
		h.respondServiceError(w, r, mLogger, err, id, "update")
		return
	}
	mLogger.InfoContext(r.Context(), "Customer updated successfully", "ID", updated.ID)
	web.RespondJSON(w, mLogger, http.StatusOK, updated)
}

func (h *Handler) DeleteByID(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}
	if err := h.service.Delete(id); err != nil {
		h.respondServiceError(w, r, mLogger, err, id, "delete")
		return
	}
	mLogger.InfoContext(r.Context(), "Customer deleted successfully", "ID", id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) respondServiceError(w http.ResponseWriter, r *http.Request, mLogger *slog.Logger, err error, id int, action string) {
	var vErr *apperrors.ValidationError
	switch {
	case errors.As(err, &vErr):
		mLogger.WarnContext(r.Context(), "Validation error occurred", "ID", id, "field", vErr.Field, "reason", vErr.Reason)
		web.RespondValidationError(w, mLogger, vErr)
	case errors.Is(err, apperrors.ErrNotFound):
		mLogger.WarnContext(r.Context(), "Customer not found", "ID", id, "action", action)
		web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Customer with ID %d not found", id))
	case errors.Is(err, apperrors.ErrDuplicateKey):
		mLogger.WarnContext(r.Context(), "Customer already exists", "ID", id)
		web.RespondError(w, mLogger, http.StatusConflict, fmt.Sprintf("Customer with ID %d already exists", id))
	default:
		mLogger.ErrorContext(r.Context(), "Error handling customer request", "ID", id, "action", action, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, fmt.Sprintf("Failed to %s customer with ID %d", action, id))
	}
}

func (h *Handler) loggerWithReqID(r *http.Request) *slog.Logger {
	reqID, _ := web.GetRequestID(r.Context())
	return h.logger.With("request_id", reqID)
}
