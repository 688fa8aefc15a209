package models

import (
	"fmt"
	"time"

	"github.com/m04kA/Truckify-BookingService/internal/calendar"
	"github.com/m04kA/Truckify-BookingService/internal/domain"
)

// BookingResponse бронирование в ответе API
type BookingResponse struct {
	ID                 int64         `json:"id"`
	CamperID           int64         `json:"camper_id"`
	StartDate          calendar.Date `json:"start_date"`
	EndDate            calendar.Date `json:"end_date"`
	CustomerName       string        `json:"customer_name"`
	CustomerEmail      string        `json:"customer_email"`
	CustomerPhone      *string       `json:"customer_phone,omitempty"`
	CustomerMessage    *string       `json:"customer_message,omitempty"`
	BasePrice          float64       `json:"base_price"`
	AttributesPrice    float64       `json:"attributes_price"`
	TotalPrice         float64       `json:"total_price"`
	SelectedAttributes []int64       `json:"selected_attributes"`
	Status             string        `json:"status"`
	PaymentStatus      string        `json:"payment_status"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
}

func FromDomainBooking(b *domain.Booking) *BookingResponse {
	selected := b.SelectedAttributes
	if selected == nil {
		selected = []int64{}
	}
	return &BookingResponse{
		ID:                 b.ID,
		CamperID:           b.CamperID,
		StartDate:          b.StartDate,
		EndDate:            b.EndDate,
		CustomerName:       b.CustomerName,
		CustomerEmail:      b.CustomerEmail,
		CustomerPhone:      b.CustomerPhone,
		CustomerMessage:    b.CustomerMessage,
		BasePrice:          b.BasePrice,
		AttributesPrice:    b.AttributesPrice,
		TotalPrice:         b.TotalPrice,
		SelectedAttributes: selected,
		Status:             string(b.Status),
		PaymentStatus:      string(b.PaymentStatus),
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

func FromDomainBookingList(bookings []*domain.Booking) []BookingResponse {
	result := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, *FromDomainBooking(b))
	}
	return result
}

// ListBookingsRequest фильтры списка бронирований из query параметров
type ListBookingsRequest struct {
	CamperID        *int64
	Status          *string
	From            *string // YYYY-MM-DD
	To              *string // YYYY-MM-DD
	IncludeInactive bool
}

// ToDomainFilter конвертирует запрос в доменный фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		CamperID:        r.CamperID,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status := domain.BookingStatus(*r.Status)
		if !status.Valid() {
			return filter, fmt.Errorf("unknown status %q", *r.Status)
		}
		filter.Status = &status
	}

	if r.From != nil {
		from, err := calendar.ParseISO(*r.From)
		if err != nil {
			return filter, fmt.Errorf("from: %w", err)
		}
		filter.From = &from
	}

	if r.To != nil {
		to, err := calendar.ParseISO(*r.To)
		if err != nil {
			return filter, fmt.Errorf("to: %w", err)
		}
		filter.To = &to
	}

	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return filter, fmt.Errorf("to is before from")
	}

	return filter, nil
}

// UpdateBookingRequest запрос на изменение бронирования из панели управления
type UpdateBookingRequest struct {
	Status          *string `json:"status,omitempty"`
	PaymentStatus   *string `json:"payment_status,omitempty"`
	CustomerName    *string `json:"customer_name,omitempty"`
	CustomerEmail   *string `json:"customer_email,omitempty"`
	CustomerPhone   *string `json:"customer_phone,omitempty"`
	CustomerMessage *string `json:"customer_message,omitempty"`
}

// ToDomainUpdate конвертирует запрос в доменное обновление
func (r *UpdateBookingRequest) ToDomainUpdate() (domain.BookingUpdate, error) {
	update := domain.BookingUpdate{
		CustomerName:    r.CustomerName,
		CustomerEmail:   r.CustomerEmail,
		CustomerPhone:   r.CustomerPhone,
		CustomerMessage: r.CustomerMessage,
	}

	if r.Status != nil {
		status := domain.BookingStatus(*r.Status)
		if !status.Valid() {
			return update, fmt.Errorf("unknown status %q", *r.Status)
		}
		update.Status = &status
	}

	if r.PaymentStatus != nil {
		payment := domain.PaymentStatus(*r.PaymentStatus)
		if !payment.Valid() {
			return update, fmt.Errorf("unknown payment_status %q", *r.PaymentStatus)
		}
		update.PaymentStatus = &payment
	}

	return update, nil
}
