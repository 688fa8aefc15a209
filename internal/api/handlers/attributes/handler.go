package attributes

import (
	"errors"
	"net/http"

	"github.com/m04kA/Truckify-BookingService/internal/api/handlers"
	"github.com/m04kA/Truckify-BookingService/internal/i18n"
	"github.com/m04kA/Truckify-BookingService/internal/service/attributes"
	"github.com/m04kA/Truckify-BookingService/internal/service/attributes/models"
)

type Handler struct {
	service AttributeService
	logger  Logger
}

func NewHandler(service AttributeService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/attributes?include_inactive=
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	includeInactive, err := handlers.QueryBool(r, "include_inactive")
	if err != nil {
		h.logger.Warn("GET /attributes - Invalid include_inactive: %v", err)
		handlers.RespondBadRequest(w, handlers.Msg(r, i18n.InvalidRequest))
		return
	}

	result, err := h.service.List(r.Context(), includeInactive)
	if err != nil {
		h.logger.Error("GET /attributes - Failed to list attributes: %v", err)
		handlers.RespondInternalError(w, r)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Get GET /api/attributes/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("GET /attributes/{id} - Invalid attribute ID: %v", err)
		handlers.RespondBadRequest(w, handlers.Msg(r, i18n.InvalidID))
		return
	}

	result, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, "GET /attributes/{id}", id, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Create POST /api/attributes
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.AttributeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /attributes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.Msg(r, i18n.InvalidRequest))
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.respondServiceError(w, r, "POST /attributes", 0, err)
		return
	}

	h.logger.Info("POST /attributes - Attribute created: attribute_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Update PUT /api/attributes/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("PUT /attributes/{id} - Invalid attribute ID: %v", err)
		handlers.RespondBadRequest(w, handlers.Msg(r, i18n.InvalidID))
		return
	}

	var req models.AttributeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /attributes/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.Msg(r, i18n.InvalidRequest))
		return
	}

	result, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		h.respondServiceError(w, r, "PUT /attributes/{id}", id, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Delete DELETE /api/attributes/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("DELETE /attributes/{id} - Invalid attribute ID: %v", err)
		handlers.RespondBadRequest(w, handlers.Msg(r, i18n.InvalidID))
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondServiceError(w, r, "DELETE /attributes/{id}", id, err)
		return
	}

	h.logger.Info("DELETE /attributes/{id} - Attribute deleted: attribute_id=%d", id)
	handlers.RespondNoContent(w)
}

func (h *Handler) respondServiceError(w http.ResponseWriter, r *http.Request, route string, id int64, err error) {
	switch {
	case errors.Is(err, attributes.ErrAttributeNotFound):
		h.logger.Warn("%s - Attribute not found: attribute_id=%d", route, id)
		handlers.RespondNotFound(w, handlers.Msg(r, i18n.AttributeNotFound))

	case errors.Is(err, attributes.ErrInvalidInput):
		h.logger.Warn("%s - Validation failed: %v", route, err)
		handlers.RespondBadRequest(w, handlers.Msg(r, i18n.ValidationFailed, handlers.Detail(err, attributes.ErrInvalidInput)))

	default:
		h.logger.Error("%s - Failed: attribute_id=%d, error=%v", route, id, err)
		handlers.RespondInternalError(w, r)
	}
}
