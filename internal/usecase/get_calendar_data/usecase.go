package get_calendar_data

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/Truckify-BookingService/internal/calendar"
	"github.com/m04kA/Truckify-BookingService/internal/domain"
)

const (
	minYear = 1970
	maxYear = 2200
)

// UseCase данные для календаря панели управления
type UseCase struct {
	camperRepo  CamperRepository
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(camperRepo CamperRepository, bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		camperRepo:  camperRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute возвращает активных кемперов и активные бронирования, пересекающие месяц
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Month < 1 || req.Month > 12 {
		uc.logger.Warn("GetCalendarData: invalid month=%d", req.Month)
		return nil, fmt.Errorf("%w: month must be between 1 and 12", ErrInvalidInput)
	}
	if req.Year < minYear || req.Year > maxYear {
		uc.logger.Warn("GetCalendarData: invalid year=%d", req.Year)
		return nil, fmt.Errorf("%w: year must be between %d and %d", ErrInvalidInput, minYear, maxYear)
	}

	month := calendar.NewMonth(req.Year, time.Month(req.Month))
	first, last := month.First(), month.Last()

	campers, err := uc.camperRepo.List(ctx, false)
	if err != nil {
		uc.logger.Error("GetCalendarData: failed to list campers: %v", err)
		return nil, fmt.Errorf("%w: failed to list campers: %v", ErrInternal, err)
	}

	bookings, err := uc.bookingRepo.List(ctx, domain.BookingsFilter{From: &first, To: &last})
	if err != nil {
		uc.logger.Error("GetCalendarData: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	uc.logger.Info("GetCalendarData: month=%s, campers=%d, bookings=%d", month, len(campers), len(bookings))
	return &Response{
		Month:    month,
		Campers:  campers,
		Bookings: bookings,
	}, nil
}
