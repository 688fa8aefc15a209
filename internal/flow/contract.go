package flow

import (
	"context"

	"github.com/m04kA/Truckify-BookingService/internal/domain"
	"github.com/m04kA/Truckify-BookingService/internal/usecase/check_availability"
	"github.com/m04kA/Truckify-BookingService/internal/usecase/create_booking"
)

// Store хранилище состояний с оптимистичной блокировкой.
// Save сохраняет только если версия в хранилище совпадает с state.Version,
// затем увеличивает state.Version; иначе ErrConflict.
type Store interface {
	Create(ctx context.Context, state *State) error
	Get(ctx context.Context, id string) (*State, error)
	Save(ctx context.Context, state *State) error
	Delete(ctx context.Context, id string) error
}

// AvailabilityChecker проверка доступности кемперов
type AvailabilityChecker interface {
	Execute(ctx context.Context, req *check_availability.Request) (*check_availability.Response, error)
}

// BookingCreator создание бронирования
type BookingCreator interface {
	Execute(ctx context.Context, req *create_booking.Request) (*create_booking.Response, error)
}

// AttributeRepository опции для расчёта стоимости
type AttributeRepository interface {
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.Attribute, error)
}

// Metrics счётчик пройденных шагов
type Metrics interface {
	IncFlowStep(step string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
