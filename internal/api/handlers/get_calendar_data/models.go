package get_calendar_data

import (
	"github.com/m04kA/Truckify-BookingService/internal/calendar"
	bookingModels "github.com/m04kA/Truckify-BookingService/internal/service/bookings/models"
	camperModels "github.com/m04kA/Truckify-BookingService/internal/service/campers/models"
	getCalendarData "github.com/m04kA/Truckify-BookingService/internal/usecase/get_calendar_data"
)

// CalendarDataResponse HTTP response model
type CalendarDataResponse struct {
	Month    calendar.Month                  `json:"month"`
	Campers  []camperModels.CamperResponse   `json:"campers"`
	Bookings []bookingModels.BookingResponse `json:"bookings"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCalendarData.Response) *CalendarDataResponse {
	return &CalendarDataResponse{
		Month:    resp.Month,
		Campers:  camperModels.FromDomainCamperList(resp.Campers),
		Bookings: bookingModels.FromDomainBookingList(resp.Bookings),
	}
}
