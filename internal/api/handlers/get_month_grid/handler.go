package get_month_grid

import (
	"net/http"
	"time"

	"github.com/m04kA/Truckify-BookingService/internal/api/handlers"
	"github.com/m04kA/Truckify-BookingService/internal/calendar"
	"github.com/m04kA/Truckify-BookingService/internal/i18n"
)

type Handler struct {
	grids  *calendar.GridCache
	now    func() time.Time
	logger Logger
}

func NewHandler(grids *calendar.GridCache, logger Logger) *Handler {
	return &Handler{
		grids:  grids,
		now:    time.Now,
		logger: logger,
	}
}

// Handle GET /api/calendar/grid?year=&month=&months=&variant=&start=&end=
// Сетки месяцев по 42 ячейки с флагами выделения
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	now := h.now()

	req, err := ParseRequest(r, now)
	if err != nil {
		h.logger.Warn("GET /calendar/grid - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, handlers.Msg(r, i18n.InvalidRequest))
		return
	}

	ctrl := calendar.NewController(req.Policy,
		calendar.WithClock(func() time.Time { return now }),
		calendar.WithGridCache(h.grids),
	)

	view := calendar.View{Displayed: req.Month, Selection: req.Selection}
	handlers.RespondJSON(w, http.StatusOK, &GridResponse{
		Today:     ctrl.Today(),
		Selection: req.Selection,
		Months:    ctrl.Render(view),
	})
}
