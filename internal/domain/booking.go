package domain

import (
	"time"

	"github.com/m04kA/Truckify-BookingService/internal/calendar"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusReserved  BookingStatus = "reserved"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case StatusReserved, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// PaymentStatus represents the payment state of a booking
type PaymentStatus string

const (
	PaymentNotPaid       PaymentStatus = "not_paid"
	PaymentPartiallyPaid PaymentStatus = "partially_paid"
	PaymentPaid          PaymentStatus = "paid"
	PaymentRefunded      PaymentStatus = "refunded"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentNotPaid, PaymentPartiallyPaid, PaymentPaid, PaymentRefunded:
		return true
	}
	return false
}

// Booking represents a camper rental for an inclusive date range
type Booking struct {
	ID        int64
	CamperID  int64
	StartDate calendar.Date
	EndDate   calendar.Date

	CustomerName    string
	CustomerEmail   string
	CustomerPhone   *string
	CustomerMessage *string

	BasePrice          float64
	AttributesPrice    float64
	TotalPrice         float64
	SelectedAttributes []int64

	Status        BookingStatus
	PaymentStatus PaymentStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking blocks its dates
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// Range даты бронирования
func (b *Booking) Range() calendar.Range {
	return calendar.Range{Start: b.StartDate, End: b.EndDate}
}

// Overlaps пересекается ли бронирование с диапазоном (даты включительно)
func (b *Booking) Overlaps(r calendar.Range) bool {
	return b.Range().Overlaps(r)
}

// BookingsFilter фильтр списка бронирований
type BookingsFilter struct {
	CamperID        *int64         // Фильтр по кемперу (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	From            *calendar.Date // Бронирования, заканчивающиеся не раньше From
	To              *calendar.Date // Бронирования, начинающиеся не позже To
	IncludeInactive bool           // Включать ли отменённые бронирования
}

// BookingUpdate частичное обновление бронирования из панели управления
type BookingUpdate struct {
	Status          *BookingStatus
	PaymentStatus   *PaymentStatus
	CustomerName    *string
	CustomerEmail   *string
	CustomerPhone   *string
	CustomerMessage *string
}
