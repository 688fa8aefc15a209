package get_month_grid

import (
	"fmt"
	"net/http"
	"time"

	"github.com/m04kA/Truckify-BookingService/internal/api/handlers"
	"github.com/m04kA/Truckify-BookingService/internal/calendar"
)

const maxMonths = 12

// GridRequest параметры сетки из query
type GridRequest struct {
	Month     calendar.Month
	Months    int
	Policy    calendar.Policy
	Selection calendar.Selection
}

// GridResponse HTTP response model
type GridResponse struct {
	Today     calendar.Date            `json:"today"`
	Selection calendar.Selection       `json:"selection"`
	Months    []calendar.RenderedMonth `json:"months"`
}

// ParseRequest year, month (1..12), months (1..12), variant (dashboard|booking), start, end
func ParseRequest(r *http.Request, now time.Time) (*GridRequest, error) {
	year, err := handlers.QueryInt(r, "year", now.Year())
	if err != nil {
		return nil, fmt.Errorf("year: %w", err)
	}

	month, err := handlers.QueryInt(r, "month", int(now.Month()))
	if err != nil {
		return nil, fmt.Errorf("month: %w", err)
	}
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("month must be between 1 and 12")
	}

	req := &GridRequest{Month: calendar.NewMonth(year, time.Month(month))}

	switch variant := r.URL.Query().Get("variant"); variant {
	case "", "dashboard":
		req.Policy = calendar.DashboardPolicy
	case "booking":
		req.Policy = calendar.BookingPolicy
	default:
		return nil, fmt.Errorf("unknown variant %q", variant)
	}

	req.Months, err = handlers.QueryInt(r, "months", req.Policy.Months)
	if err != nil {
		return nil, fmt.Errorf("months: %w", err)
	}
	if req.Months < 1 || req.Months > maxMonths {
		return nil, fmt.Errorf("months must be between 1 and %d", maxMonths)
	}
	req.Policy.Months = req.Months

	if !req.Month.Valid() || !req.Month.Add(req.Months-1).Valid() {
		return nil, fmt.Errorf("year must be between %d and %d", calendar.MinYear, calendar.MaxYear)
	}

	req.Selection, err = parseSelection(r)
	if err != nil {
		return nil, err
	}

	return req, nil
}

func parseSelection(r *http.Request) (calendar.Selection, error) {
	startStr, endStr := r.URL.Query().Get("start"), r.URL.Query().Get("end")
	if startStr == "" {
		if endStr != "" {
			return calendar.Empty(), fmt.Errorf("end without start")
		}
		return calendar.Empty(), nil
	}

	start, err := calendar.ParseISO(startStr)
	if err != nil {
		return calendar.Empty(), fmt.Errorf("start: %w", err)
	}
	if endStr == "" {
		return calendar.AnchorAt(start), nil
	}

	end, err := calendar.ParseISO(endStr)
	if err != nil {
		return calendar.Empty(), fmt.Errorf("end: %w", err)
	}
	if start == end {
		return calendar.AnchorAt(start), nil
	}
	return calendar.RangeOf(start, end), nil
}
