package list_bookings

import (
	"net/http"
	"strconv"

	"github.com/m04kA/Truckify-BookingService/internal/api/handlers"
	"github.com/m04kA/Truckify-BookingService/internal/service/bookings/models"
)

// ToServiceRequest собирает фильтр из query параметров:
// camper_id, status, from, to, include_inactive (все опциональны)
func ToServiceRequest(r *http.Request) (*models.ListBookingsRequest, error) {
	q := r.URL.Query()
	req := &models.ListBookingsRequest{}

	if v := q.Get("camper_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, err
		}
		req.CamperID = &id
	}

	if v := q.Get("status"); v != "" {
		req.Status = &v
	}
	if v := q.Get("from"); v != "" {
		req.From = &v
	}
	if v := q.Get("to"); v != "" {
		req.To = &v
	}

	includeInactive, err := handlers.QueryBool(r, "include_inactive")
	if err != nil {
		return nil, err
	}
	req.IncludeInactive = includeInactive

	return req, nil
}
