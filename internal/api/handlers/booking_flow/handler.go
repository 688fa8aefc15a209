package booking_flow

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/Truckify-BookingService/internal/api/handlers"
	createBookingHandler "github.com/m04kA/Truckify-BookingService/internal/api/handlers/create_booking"
	"github.com/m04kA/Truckify-BookingService/internal/calendar"
	"github.com/m04kA/Truckify-BookingService/internal/flow"
	"github.com/m04kA/Truckify-BookingService/internal/i18n"
	createBooking "github.com/m04kA/Truckify-BookingService/internal/usecase/create_booking"
)

type Handler struct {
	controller FlowController
	logger     Logger
}

func NewHandler(controller FlowController, logger Logger) *Handler {
	return &Handler{
		controller: controller,
		logger:     logger,
	}
}

// Start POST /api/flow
func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	state, err := h.controller.Start(r.Context())
	if err != nil {
		h.logger.Error("POST /flow - Failed to start flow: %v", err)
		handlers.RespondInternalError(w, r)
		return
	}

	h.logger.Info("POST /flow - Flow started: id=%s", state.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromState(r, state))
}

// Get GET /api/flow/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	state, err := h.controller.Get(r.Context(), id)
	if err != nil {
		h.respondError(w, r, "GET /flow/{id}", id, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromState(r, state))
}

// Restart DELETE /api/flow/{id}
func (h *Handler) Restart(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.controller.Restart(r.Context(), id); err != nil {
		h.respondError(w, r, "DELETE /flow/{id}", id, err)
		return
	}

	h.logger.Info("DELETE /flow/{id} - Flow dropped: id=%s", id)
	handlers.RespondNoContent(w)
}

// Calendar GET /api/flow/{id}/calendar
func (h *Handler) Calendar(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	state, months, err := h.controller.Calendar(r.Context(), id)
	if err != nil {
		h.respondError(w, r, "GET /flow/{id}/calendar", id, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &CalendarResponse{State: FromState(r, state), Months: months})
}

// Click POST /api/flow/{id}/calendar/click
func (h *Handler) Click(w http.ResponseWriter, r *http.Request) {
	const route = "POST /flow/{id}/calendar/click"
	id := mux.Vars(r)["id"]

	var req ClickRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, handlers.Msg(r, i18n.InvalidRequest))
		return
	}

	date, err := calendar.ParseISO(req.Date)
	if err != nil {
		h.logger.Warn("%s - Invalid date: %v", route, err)
		handlers.RespondBadRequest(w, handlers.Msg(r, i18n.InvalidDate))
		return
	}

	state, err := h.controller.Click(r.Context(), id, date)
	if err != nil {
		h.respondError(w, r, route, id, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromState(r, state))
}

// Navigate POST /api/flow/{id}/calendar/navigate
func (h *Handler) Navigate(w http.ResponseWriter, r *http.Request) {
	const route = "POST /flow/{id}/calendar/navigate"
	id := mux.Vars(r)["id"]

	var req NavigateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, handlers.Msg(r, i18n.InvalidRequest))
		return
	}

	if req.Months > maxNavigateMonths || req.Months < -maxNavigateMonths {
		h.logger.Warn("%s - Navigation step out of bounds: id=%s, months=%d", route, id, req.Months)
		handlers.RespondBadRequest(w, handlers.Msg(r, i18n.InvalidRequest))
		return
	}

	state, err := h.controller.Navigate(r.Context(), id, req.Months)
	if err != nil {
		h.respondError(w, r, route, id, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromState(r, state))
}

// SelectCamper POST /api/flow/{id}/camper
func (h *Handler) SelectCamper(w http.ResponseWriter, r *http.Request) {
	const route = "POST /flow/{id}/camper"
	id := mux.Vars(r)["id"]

	var req CamperRequest
	if err := handlers.DecodeJSON(r, &req); err != nil || req.CamperID <= 0 {
		h.logger.Warn("%s - Invalid request body: camper_id=%d, %v", route, req.CamperID, err)
		handlers.RespondBadRequest(w, handlers.Msg(r, i18n.InvalidRequest))
		return
	}

	state, err := h.controller.SelectCamper(r.Context(), id, req.CamperID)
	if err != nil {
		h.respondError(w, r, route, id, err)
		return
	}

	h.logger.Info("%s - Camper selected: id=%s, camper_id=%d", route, id, req.CamperID)
	handlers.RespondJSON(w, http.StatusOK, FromState(r, state))
}

// SetAttributes POST /api/flow/{id}/attributes
func (h *Handler) SetAttributes(w http.ResponseWriter, r *http.Request) {
	const route = "POST /flow/{id}/attributes"
	id := mux.Vars(r)["id"]

	var req AttributesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, handlers.Msg(r, i18n.InvalidRequest))
		return
	}

	state, err := h.controller.SetAttributes(r.Context(), id, req.AttributeIDs)
	if err != nil {
		h.respondError(w, r, route, id, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromState(r, state))
}

// SubmitCustomer POST /api/flow/{id}/customer
// создаёт бронирование, сессия переходит на шаг confirmation
func (h *Handler) SubmitCustomer(w http.ResponseWriter, r *http.Request) {
	const route = "POST /flow/{id}/customer"
	id := mux.Vars(r)["id"]

	var req CustomerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, handlers.Msg(r, i18n.InvalidRequest))
		return
	}

	state, err := h.controller.SubmitCustomer(r.Context(), id, req.ToCustomer())
	if err != nil {
		if isFlowError(err) {
			h.respondError(w, r, route, id, err)
			return
		}
		createBookingHandler.RespondUseCaseError(w, r, h.logger, route, 0, err)
		return
	}

	h.logger.Info("%s - Booking confirmed: id=%s, booking_id=%d, status=%s", route, id, *state.BookingID, state.Status)
	handlers.RespondJSON(w, http.StatusCreated, FromState(r, state))
}

func isFlowError(err error) bool {
	for _, target := range []error{
		flow.ErrNotFound, flow.ErrConflict, flow.ErrCompleted,
		flow.ErrCamperNotOffered, flow.ErrStepNotReached, flow.ErrInternal,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, route, id string, err error) {
	var stepErr *flow.StepError
	switch {
	case errors.Is(err, flow.ErrNotFound):
		h.logger.Warn("%s - Flow not found: id=%s", route, id)
		handlers.RespondNotFound(w, handlers.Msg(r, i18n.FlowNotFound))

	case errors.Is(err, flow.ErrConflict):
		h.logger.Warn("%s - Concurrent modification: id=%s", route, id)
		handlers.RespondConflict(w, handlers.Msg(r, i18n.FlowConflict))

	case errors.As(err, &stepErr):
		h.logger.Warn("%s - Step not reached: id=%s, step=%s, back=%s", route, id, stepErr.Step, stepErr.Back)
		handlers.RespondJSON(w, http.StatusConflict, &StepErrorResponse{
			Detail: handlers.Msg(r, i18n.StepNotReached, stepErr.Back),
			Back:   stepErr.Back,
		})

	case errors.Is(err, flow.ErrCompleted):
		h.logger.Warn("%s - Flow already completed: id=%s", route, id)
		handlers.RespondConflict(w, handlers.Msg(r, i18n.FlowCompleted))

	case errors.Is(err, flow.ErrCamperNotOffered):
		h.logger.Warn("%s - Camper not offered: id=%s", route, id)
		handlers.RespondConflict(w, handlers.Msg(r, i18n.CamperNotAvailable))

	case errors.Is(err, calendar.ErrOutOfRange):
		h.logger.Warn("%s - Calendar out of range: id=%s, %v", route, id, err)
		handlers.RespondBadRequest(w, handlers.Msg(r, i18n.InvalidRequest))

	case errors.Is(err, createBooking.ErrAttributeNotFound):
		h.logger.Warn("%s - Attribute not found: id=%s, %v", route, id, err)
		handlers.RespondBadRequest(w, handlers.Msg(r, i18n.AttributeNotFound))

	default:
		h.logger.Error("%s - Flow error: id=%s, error=%v", route, id, err)
		handlers.RespondInternalError(w, r)
	}
}
