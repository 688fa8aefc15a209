package check_availability

import (
	"net/http"

	"github.com/m04kA/Truckify-BookingService/internal/api/handlers"
	"github.com/m04kA/Truckify-BookingService/internal/calendar"
	"github.com/m04kA/Truckify-BookingService/internal/i18n"
	checkAvailability "github.com/m04kA/Truckify-BookingService/internal/usecase/check_availability"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/availability?start_date=YYYY-MM-DD&end_date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	start, err := calendar.ParseISO(r.URL.Query().Get("start_date"))
	if err != nil {
		h.logger.Warn("GET /availability - Invalid start_date: %v", err)
		handlers.RespondBadRequest(w, handlers.Msg(r, i18n.InvalidDate))
		return
	}

	end, err := calendar.ParseISO(r.URL.Query().Get("end_date"))
	if err != nil {
		h.logger.Warn("GET /availability - Invalid end_date: %v", err)
		handlers.RespondBadRequest(w, handlers.Msg(r, i18n.InvalidDate))
		return
	}

	result, err := h.useCase.Execute(r.Context(), &checkAvailability.Request{StartDate: start, EndDate: end})
	if err != nil {
		if msg, ok := handlers.RangeMessage(r, err); ok {
			h.logger.Warn("GET /availability - Invalid range %s..%s: %v", start, end, err)
			handlers.RespondBadRequest(w, msg)
			return
		}
		h.logger.Error("GET /availability - Failed to check availability: %v", err)
		handlers.RespondInternalError(w, r)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
