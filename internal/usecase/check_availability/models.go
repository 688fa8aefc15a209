package check_availability

import (
	"github.com/m04kA/Truckify-BookingService/internal/calendar"
	"github.com/m04kA/Truckify-BookingService/internal/domain"
)

// Request диапазон дат для проверки (включительно)
type Request struct {
	StartDate calendar.Date
	EndDate   calendar.Date
}

// Response доступность всех активных кемперов
type Response struct {
	Range        calendar.Range
	ChargeType   domain.ChargeType
	BillableDays int
	Availability []domain.AvailabilityResult // Отсортировано по названию кемпера
}

// AvailableCount число свободных кемперов
func (r *Response) AvailableCount() int {
	n := 0
	for _, a := range r.Availability {
		if a.Available {
			n++
		}
	}
	return n
}

// Find результат для кемпера
func (r *Response) Find(camperID int64) (domain.AvailabilityResult, bool) {
	for _, a := range r.Availability {
		if a.Camper.ID == camperID {
			return a, true
		}
	}
	return domain.AvailabilityResult{}, false
}
