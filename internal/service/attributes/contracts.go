package attributes

import (
	"context"

	"github.com/m04kA/Truckify-BookingService/internal/domain"
)

// AttributeRepository интерфейс репозитория опций
type AttributeRepository interface {
	Create(ctx context.Context, attr *domain.Attribute) (*domain.Attribute, error)
	GetByID(ctx context.Context, id int64) (*domain.Attribute, error)
	List(ctx context.Context, includeInactive bool) ([]*domain.Attribute, error)
	Update(ctx context.Context, attr *domain.Attribute) (*domain.Attribute, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
