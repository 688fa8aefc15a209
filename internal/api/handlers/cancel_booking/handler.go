package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/Truckify-BookingService/internal/api/handlers"
	"github.com/m04kA/Truckify-BookingService/internal/i18n"
	"github.com/m04kA/Truckify-BookingService/internal/service/bookings"
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

// Handle DELETE /api/bookings/{id}
// Бронирование не удаляется, а переводится в статус cancelled
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("DELETE /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, handlers.Msg(r, i18n.InvalidID))
		return
	}

	err = h.service.Cancel(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("DELETE /bookings/{id} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, handlers.Msg(r, i18n.BookingNotFound))

		case errors.Is(err, bookings.ErrAlreadyCancelled):
			// Повторная отмена идемпотентна
			h.logger.Info("DELETE /bookings/{id} - Booking already cancelled: booking_id=%d", bookingID)
			handlers.RespondNoContent(w)

		default:
			h.logger.Error("DELETE /bookings/{id} - Failed to cancel booking: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w, r)
		}
		return
	}

	h.logger.Info("DELETE /bookings/{id} - Booking cancelled: booking_id=%d", bookingID)
	handlers.RespondNoContent(w)
}
