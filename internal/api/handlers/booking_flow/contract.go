package booking_flow

import (
	"context"

	"github.com/m04kA/Truckify-BookingService/internal/calendar"
	"github.com/m04kA/Truckify-BookingService/internal/flow"
)

type FlowController interface {
	Start(ctx context.Context) (*flow.State, error)
	Get(ctx context.Context, id string) (*flow.State, error)
	Restart(ctx context.Context, id string) error
	Calendar(ctx context.Context, id string) (*flow.State, []calendar.RenderedMonth, error)
	Click(ctx context.Context, id string, d calendar.Date) (*flow.State, error)
	Navigate(ctx context.Context, id string, months int) (*flow.State, error)
	SelectCamper(ctx context.Context, id string, camperID int64) (*flow.State, error)
	SetAttributes(ctx context.Context, id string, attributeIDs []int64) (*flow.State, error)
	SubmitCustomer(ctx context.Context, id string, customer flow.Customer) (*flow.State, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
