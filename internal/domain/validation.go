package domain

import (
	"errors"
	"fmt"

	"github.com/m04kA/Truckify-BookingService/internal/calendar"
)

var (
	// ErrInvalidRange конец диапазона раньше начала или даты не заданы
	ErrInvalidRange = errors.New("domain: invalid date range")

	// ErrPastDate диапазон начинается в прошлом
	ErrPastDate = errors.New("domain: start date is in the past")

	// ErrTooShort диапазон короче минимального
	ErrTooShort = errors.New("domain: booking is too short")

	// ErrTooLong диапазон длиннее максимального
	ErrTooLong = errors.New("domain: booking is too long")
)

// LengthError нарушение ограничения длины бронирования
type LengthError struct {
	Limit    int
	TooShort bool
}

func (e *LengthError) Error() string {
	if e.TooShort {
		return fmt.Sprintf("booking must be at least %d days", e.Limit)
	}
	return fmt.Sprintf("booking must be at most %d days", e.Limit)
}

func (e *LengthError) Unwrap() error {
	if e.TooShort {
		return ErrTooShort
	}
	return ErrTooLong
}

// ValidateRange проверяет запрошенный диапазон: start <= end, не в прошлом,
// длина (дни включительно) в пределах настроек
func ValidateRange(start, end calendar.Date, today calendar.Date, s Settings) (calendar.Range, error) {
	if start.IsZero() || end.IsZero() || end.Before(start) {
		return calendar.Range{}, ErrInvalidRange
	}
	if start.Before(today) {
		return calendar.Range{}, ErrPastDate
	}

	r := calendar.Range{Start: start, End: end}
	days := r.Days()
	if s.MinimumBookingDays > 0 && days < s.MinimumBookingDays {
		return calendar.Range{}, &LengthError{Limit: s.MinimumBookingDays, TooShort: true}
	}
	if s.MaximumBookingDays > 0 && days > s.MaximumBookingDays {
		return calendar.Range{}, &LengthError{Limit: s.MaximumBookingDays}
	}
	return r, nil
}
