package check_availability

import (
	"context"
	"time"

	"github.com/m04kA/Truckify-BookingService/internal/calendar"
	"github.com/m04kA/Truckify-BookingService/internal/domain"
)

// CamperRepository интерфейс репозитория кемперов
type CamperRepository interface {
	List(ctx context.Context, includeInactive bool) ([]*domain.Camper, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListOverlapping(ctx context.Context, rng calendar.Range, camperID *int64) ([]*domain.Booking, error)
}

// SettingsProvider источник текущих настроек бизнеса
type SettingsProvider interface {
	Current(ctx context.Context) (*domain.Settings, error)
}

// Metrics счётчики проверок доступности
type Metrics interface {
	IncAvailabilityCheck(outcome string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
