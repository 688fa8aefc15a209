package health

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/m04kA/Truckify-BookingService/internal/api/handlers"
)

const checkTimeout = 2 * time.Second

// StatusResponse HTTP response model
type StatusResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

type Handler struct {
	checks map[string]Check
	logger Logger
}

func NewHandler(checks map[string]Check, logger Logger) *Handler {
	return &Handler{
		checks: checks,
		logger: logger,
	}
}

// Live GET /healthz
func (h *Handler) Live(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, &StatusResponse{Status: "ok"})
}

// Ready GET /readyz
// 503, если хотя бы одна зависимость недоступна
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	resp := &StatusResponse{Status: "ok", Checks: make(map[string]string, len(names))}
	status := http.StatusOK
	for _, name := range names {
		if err := h.checks[name](ctx); err != nil {
			h.logger.Warn("GET /readyz - Dependency unavailable: name=%s, error=%v", name, err)
			resp.Checks[name] = "unavailable"
			resp.Status = "unavailable"
			status = http.StatusServiceUnavailable
			continue
		}
		resp.Checks[name] = "ok"
	}

	handlers.RespondJSON(w, status, resp)
}
