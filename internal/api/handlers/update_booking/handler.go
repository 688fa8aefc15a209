package update_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/Truckify-BookingService/internal/api/handlers"
	"github.com/m04kA/Truckify-BookingService/internal/i18n"
	"github.com/m04kA/Truckify-BookingService/internal/service/bookings"
	"github.com/m04kA/Truckify-BookingService/internal/service/bookings/models"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/bookings/{id}
// Меняет статус, статус оплаты и данные клиента; даты и цены не меняются
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, handlers.Msg(r, i18n.InvalidID))
		return
	}

	var req models.UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.Msg(r, i18n.InvalidRequest))
		return
	}

	result, err := h.service.Update(r.Context(), bookingID, &req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/{id} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, handlers.Msg(r, i18n.BookingNotFound))

		case errors.Is(err, bookings.ErrDatesUnavailable):
			h.logger.Warn("PUT /bookings/{id} - Dates taken, cannot restore: booking_id=%d", bookingID)
			handlers.RespondConflict(w, handlers.Msg(r, i18n.DatesUnavailable))

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("PUT /bookings/{id} - Validation failed: %v", err)
			handlers.RespondBadRequest(w, handlers.Msg(r, i18n.ValidationFailed, handlers.Detail(err, bookings.ErrInvalidInput)))

		default:
			h.logger.Error("PUT /bookings/{id} - Failed to update booking: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w, r)
		}
		return
	}

	h.logger.Info("PUT /bookings/{id} - Booking updated: booking_id=%d, status=%s, payment_status=%s",
		bookingID, result.Status, result.PaymentStatus)
	handlers.RespondJSON(w, http.StatusOK, result)
}
