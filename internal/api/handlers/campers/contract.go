package campers

import (
	"context"

	"github.com/m04kA/Truckify-BookingService/internal/service/campers/models"
)

type CamperService interface {
	List(ctx context.Context, includeInactive bool) ([]models.CamperResponse, error)
	GetByID(ctx context.Context, id int64) (*models.CamperResponse, error)
	Create(ctx context.Context, req *models.CamperRequest) (*models.CamperResponse, error)
	Update(ctx context.Context, id int64, req *models.CamperRequest) (*models.CamperResponse, error)
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
