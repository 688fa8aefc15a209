package attributes

import (
	"context"

	"github.com/m04kA/Truckify-BookingService/internal/service/attributes/models"
)

type AttributeService interface {
	List(ctx context.Context, includeInactive bool) ([]models.AttributeResponse, error)
	GetByID(ctx context.Context, id int64) (*models.AttributeResponse, error)
	Create(ctx context.Context, req *models.AttributeRequest) (*models.AttributeResponse, error)
	Update(ctx context.Context, id int64, req *models.AttributeRequest) (*models.AttributeResponse, error)
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
