package get_calendar_data

import (
	"github.com/m04kA/Truckify-BookingService/internal/calendar"
	"github.com/m04kA/Truckify-BookingService/internal/domain"
)

// Request месяц календаря (Month 1..12)
type Request struct {
	Year  int
	Month int
}

// Response кемперы и бронирования, пересекающие месяц
type Response struct {
	Month    calendar.Month
	Campers  []*domain.Camper
	Bookings []*domain.Booking
}

// BookingsFor бронирования кемпера, отсортированные по дате начала
func (r *Response) BookingsFor(camperID int64) []*domain.Booking {
	var result []*domain.Booking
	for _, b := range r.Bookings {
		if b.CamperID == camperID {
			result = append(result, b)
		}
	}
	return result
}
