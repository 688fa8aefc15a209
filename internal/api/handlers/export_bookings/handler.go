package export_bookings

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/m04kA/Truckify-BookingService/internal/api/handlers"
	"github.com/m04kA/Truckify-BookingService/internal/api/handlers/list_bookings"
	"github.com/m04kA/Truckify-BookingService/internal/i18n"
	"github.com/m04kA/Truckify-BookingService/internal/service/bookings"
)

const contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

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

// Handle GET /api/bookings/export
// Те же фильтры, что и у списка бронирований
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceReq, err := list_bookings.ToServiceRequest(r)
	if err != nil {
		h.logger.Warn("GET /bookings/export - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, handlers.Msg(r, i18n.InvalidRequest))
		return
	}

	// Собираем файл в памяти, чтобы при ошибке вернуть JSON, а не обрезанный XLSX
	var buf bytes.Buffer
	count, err := h.service.Export(r.Context(), serviceReq, &buf)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings/export - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, handlers.Msg(r, i18n.ValidationFailed, handlers.Detail(err, bookings.ErrInvalidInput)))

		default:
			h.logger.Error("GET /bookings/export - Failed to export bookings: %v", err)
			handlers.RespondInternalError(w, r)
		}
		return
	}

	filename := "bookings.xlsx"
	if serviceReq.From != nil && serviceReq.To != nil {
		filename = fmt.Sprintf("bookings_%s_%s.xlsx", *serviceReq.From, *serviceReq.To)
	}

	w.Header().Set("Content-Type", contentTypeXLSX)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn("GET /bookings/export - Failed to write response: %v", err)
		return
	}

	h.logger.Info("GET /bookings/export - Exported %d bookings", count)
}
