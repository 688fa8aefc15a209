package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/Truckify-BookingService/internal/api/handlers"
	"github.com/m04kA/Truckify-BookingService/internal/i18n"
	createBooking "github.com/m04kA/Truckify-BookingService/internal/usecase/create_booking"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.Msg(r, i18n.InvalidRequest))
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Invalid dates: %v", err)
		handlers.RespondBadRequest(w, handlers.Msg(r, i18n.InvalidDate))
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		RespondUseCaseError(w, r, h.logger, "POST /bookings", req.CamperID, err)
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, camper_id=%d, status=%s",
		result.Booking.ID, req.CamperID, result.Booking.Status)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

// RespondUseCaseError ошибки создания бронирования в HTTP ответ
// (используется и шагом подтверждения публичного бронирования)
func RespondUseCaseError(w http.ResponseWriter, r *http.Request, logger Logger, route string, camperID int64, err error) {
	if msg, ok := handlers.RangeMessage(r, err); ok {
		logger.Warn("%s - Invalid date range: camper_id=%d, %v", route, camperID, err)
		handlers.RespondBadRequest(w, msg)
		return
	}

	switch {
	case errors.Is(err, createBooking.ErrDatesUnavailable):
		logger.Warn("%s - Dates not available: camper_id=%d", route, camperID)
		handlers.RespondConflict(w, handlers.Msg(r, i18n.DatesUnavailable))

	case errors.Is(err, createBooking.ErrCamperNotFound):
		logger.Warn("%s - Camper not found: camper_id=%d", route, camperID)
		handlers.RespondNotFound(w, handlers.Msg(r, i18n.CamperNotFound))

	case errors.Is(err, createBooking.ErrCamperNotAvailable):
		logger.Warn("%s - Camper inactive: camper_id=%d", route, camperID)
		handlers.RespondConflict(w, handlers.Msg(r, i18n.CamperNotAvailable))

	case errors.Is(err, createBooking.ErrAttributeNotFound):
		logger.Warn("%s - Attribute not found: %v", route, err)
		handlers.RespondBadRequest(w, handlers.Msg(r, i18n.AttributeNotFound))

	case errors.Is(err, createBooking.ErrInvalidInput):
		logger.Warn("%s - Validation failed: %v", route, err)
		handlers.RespondBadRequest(w, handlers.Msg(r, i18n.ValidationFailed, handlers.Detail(err, createBooking.ErrInvalidInput)))

	default:
		logger.Error("%s - Failed to create booking: camper_id=%d, error=%v", route, camperID, err)
		handlers.RespondInternalError(w, r)
	}
}
