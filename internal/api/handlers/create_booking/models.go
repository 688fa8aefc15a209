package create_booking

import (
	"github.com/m04kA/Truckify-BookingService/internal/calendar"
	bookingModels "github.com/m04kA/Truckify-BookingService/internal/service/bookings/models"
	createBooking "github.com/m04kA/Truckify-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CamperID           int64   `json:"camper_id"`
	StartDate          string  `json:"start_date"` // "2025-07-10"
	EndDate            string  `json:"end_date"`   // "2025-07-14", включительно
	CustomerName       string  `json:"customer_name"`
	CustomerEmail      string  `json:"customer_email"`
	CustomerPhone      *string `json:"customer_phone,omitempty"`
	CustomerMessage    *string `json:"customer_message,omitempty"`
	SelectedAttributes []int64 `json:"selected_attributes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	start, err := calendar.ParseISO(r.StartDate)
	if err != nil {
		return nil, err
	}

	end, err := calendar.ParseISO(r.EndDate)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		CamperID:        r.CamperID,
		StartDate:       start,
		EndDate:         end,
		CustomerName:    r.CustomerName,
		CustomerEmail:   r.CustomerEmail,
		CustomerPhone:   r.CustomerPhone,
		CustomerMessage: r.CustomerMessage,
		AttributeIDs:    r.SelectedAttributes,
	}, nil
}

// FromUseCaseResponse бронирование в формате списка бронирований
func FromUseCaseResponse(resp *createBooking.Response) *bookingModels.BookingResponse {
	return bookingModels.FromDomainBooking(resp.Booking)
}
