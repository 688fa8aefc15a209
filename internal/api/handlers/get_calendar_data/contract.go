package get_calendar_data

import (
	"context"

	getCalendarData "github.com/m04kA/Truckify-BookingService/internal/usecase/get_calendar_data"
)

type GetCalendarDataUseCase interface {
	Execute(ctx context.Context, req *getCalendarData.Request) (*getCalendarData.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
