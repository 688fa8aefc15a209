package campers

import (
	"context"

	"github.com/m04kA/Truckify-BookingService/internal/domain"
)

// CamperRepository интерфейс репозитория кемперов
type CamperRepository interface {
	Create(ctx context.Context, camper *domain.Camper) (*domain.Camper, error)
	GetByID(ctx context.Context, id int64) (*domain.Camper, error)
	List(ctx context.Context, includeInactive bool) ([]*domain.Camper, error)
	Update(ctx context.Context, camper *domain.Camper) (*domain.Camper, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
