package get_calendar_data

import (
	"context"

	"github.com/m04kA/Truckify-BookingService/internal/domain"
)

// CamperRepository интерфейс репозитория кемперов
type CamperRepository interface {
	List(ctx context.Context, includeInactive bool) ([]*domain.Camper, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
