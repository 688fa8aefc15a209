package get_calendar_data

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/Truckify-BookingService/internal/api/handlers"
	"github.com/m04kA/Truckify-BookingService/internal/i18n"
	getCalendarData "github.com/m04kA/Truckify-BookingService/internal/usecase/get_calendar_data"
)

type Handler struct {
	useCase GetCalendarDataUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarDataUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/calendar?year=&month=
// month 1..12; по умолчанию текущий месяц
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	now := time.Now()

	year, err := handlers.QueryInt(r, "year", now.Year())
	if err != nil {
		h.logger.Warn("GET /calendar - Invalid year: %v", err)
		handlers.RespondBadRequest(w, handlers.Msg(r, i18n.InvalidRequest))
		return
	}

	month, err := handlers.QueryInt(r, "month", int(now.Month()))
	if err != nil {
		h.logger.Warn("GET /calendar - Invalid month: %v", err)
		handlers.RespondBadRequest(w, handlers.Msg(r, i18n.InvalidRequest))
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getCalendarData.Request{Year: year, Month: month})
	if err != nil {
		switch {
		case errors.Is(err, getCalendarData.ErrInvalidInput):
			h.logger.Warn("GET /calendar - Invalid month: year=%d, month=%d", year, month)
			handlers.RespondBadRequest(w, handlers.Msg(r, i18n.ValidationFailed, handlers.Detail(err, getCalendarData.ErrInvalidInput)))

		default:
			h.logger.Error("GET /calendar - Failed to get calendar data: year=%d, month=%d, error=%v", year, month, err)
			handlers.RespondInternalError(w, r)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
