package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/Truckify-BookingService/internal/calendar"
	"github.com/m04kA/Truckify-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	ListOverlapping(ctx context.Context, rng calendar.Range, camperID *int64) ([]*domain.Booking, error)
}

// CamperRepository интерфейс репозитория кемперов
type CamperRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Camper, error)
}

// AttributeRepository интерфейс репозитория опций
type AttributeRepository interface {
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.Attribute, error)
}

// SettingsProvider источник текущих настроек бизнеса
type SettingsProvider interface {
	Current(ctx context.Context) (*domain.Settings, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics счётчик созданных бронирований
type Metrics interface {
	IncBookingCreated(status string)
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
