package export_bookings

import (
	"context"
	"io"

	"github.com/m04kA/Truckify-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	Export(ctx context.Context, req *models.ListBookingsRequest, w io.Writer) (int, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
