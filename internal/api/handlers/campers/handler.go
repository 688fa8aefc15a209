package campers

import (
	"errors"
	"net/http"

	"github.com/m04kA/Truckify-BookingService/internal/api/handlers"
	"github.com/m04kA/Truckify-BookingService/internal/i18n"
	"github.com/m04kA/Truckify-BookingService/internal/service/campers"
	"github.com/m04kA/Truckify-BookingService/internal/service/campers/models"
)

type Handler struct {
	service CamperService
	logger  Logger
}

func NewHandler(service CamperService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/campers?include_inactive=
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	includeInactive, err := handlers.QueryBool(r, "include_inactive")
	if err != nil {
		h.logger.Warn("GET /campers - Invalid include_inactive: %v", err)
		handlers.RespondBadRequest(w, handlers.Msg(r, i18n.InvalidRequest))
		return
	}

	result, err := h.service.List(r.Context(), includeInactive)
	if err != nil {
		h.logger.Error("GET /campers - Failed to list campers: %v", err)
		handlers.RespondInternalError(w, r)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Get GET /api/campers/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("GET /campers/{id} - Invalid camper ID: %v", err)
		handlers.RespondBadRequest(w, handlers.Msg(r, i18n.InvalidID))
		return
	}

	result, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, "GET /campers/{id}", id, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Create POST /api/campers
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CamperRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /campers - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.Msg(r, i18n.InvalidRequest))
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.respondServiceError(w, r, "POST /campers", 0, err)
		return
	}

	h.logger.Info("POST /campers - Camper created: camper_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Update PUT /api/campers/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("PUT /campers/{id} - Invalid camper ID: %v", err)
		handlers.RespondBadRequest(w, handlers.Msg(r, i18n.InvalidID))
		return
	}

	var req models.CamperRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /campers/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.Msg(r, i18n.InvalidRequest))
		return
	}

	result, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		h.respondServiceError(w, r, "PUT /campers/{id}", id, err)
		return
	}

	h.logger.Info("PUT /campers/{id} - Camper updated: camper_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Delete DELETE /api/campers/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("DELETE /campers/{id} - Invalid camper ID: %v", err)
		handlers.RespondBadRequest(w, handlers.Msg(r, i18n.InvalidID))
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondServiceError(w, r, "DELETE /campers/{id}", id, err)
		return
	}

	h.logger.Info("DELETE /campers/{id} - Camper deleted: camper_id=%d", id)
	handlers.RespondNoContent(w)
}

func (h *Handler) respondServiceError(w http.ResponseWriter, r *http.Request, route string, id int64, err error) {
	switch {
	case errors.Is(err, campers.ErrCamperNotFound):
		h.logger.Warn("%s - Camper not found: camper_id=%d", route, id)
		handlers.RespondNotFound(w, handlers.Msg(r, i18n.CamperNotFound))

	case errors.Is(err, campers.ErrCamperInUse):
		h.logger.Warn("%s - Camper has bookings: camper_id=%d", route, id)
		handlers.RespondConflict(w, handlers.Msg(r, i18n.CamperInUse))

	case errors.Is(err, campers.ErrInvalidInput):
		h.logger.Warn("%s - Validation failed: %v", route, err)
		handlers.RespondBadRequest(w, handlers.Msg(r, i18n.ValidationFailed, handlers.Detail(err, campers.ErrInvalidInput)))

	default:
		h.logger.Error("%s - Failed: camper_id=%d, error=%v", route, id, err)
		handlers.RespondInternalError(w, r)
	}
}
