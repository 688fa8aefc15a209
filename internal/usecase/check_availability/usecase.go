package check_availability

import (
	"context"
	"fmt"
	"sort"

	"github.com/m04kA/Truckify-BookingService/internal/calendar"
	"github.com/m04kA/Truckify-BookingService/internal/domain"
)

// Исходы проверки для метрик
const (
	outcomeAvailable   = "available"
	outcomeUnavailable = "unavailable"
	outcomeInvalid     = "invalid"
)

// UseCase проверка доступности кемперов на диапазон дат
type UseCase struct {
	camperRepo   CamperRepository
	bookingRepo  BookingRepository
	settings     SettingsProvider
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	camperRepo CamperRepository,
	bookingRepo BookingRepository,
	settings SettingsProvider,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		camperRepo:   camperRepo,
		bookingRepo:  bookingRepo,
		settings:     settings,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute возвращает доступность и цену каждого активного кемпера
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: start=%s, end=%s", req.StartDate, req.EndDate)

	settings, err := uc.settings.Current(ctx)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to load settings: %v", err)
		return nil, fmt.Errorf("%w: failed to load settings: %v", ErrInternal, err)
	}

	today := calendar.Today(uc.timeProvider.Now())
	rng, err := domain.ValidateRange(req.StartDate, req.EndDate, today, *settings)
	if err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		uc.metrics.IncAvailabilityCheck(outcomeInvalid)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	campers, err := uc.camperRepo.List(ctx, false)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to list campers: %v", err)
		return nil, fmt.Errorf("%w: failed to list campers: %v", ErrInternal, err)
	}

	overlapping, err := uc.bookingRepo.ListOverlapping(ctx, rng, nil)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	resp := &Response{
		Range:        rng,
		ChargeType:   settings.ChargeType,
		BillableDays: domain.BillableDays(rng, settings.ChargeType),
		Availability: Compute(campers, overlapping, rng, settings.ChargeType),
	}

	outcome := outcomeUnavailable
	if resp.AvailableCount() > 0 {
		outcome = outcomeAvailable
	}
	uc.metrics.IncAvailabilityCheck(outcome)

	uc.logger.Info("CheckAvailability: %d of %d campers available for %s..%s",
		resp.AvailableCount(), len(campers), rng.Start, rng.End)
	return resp, nil
}

// Compute считает доступность: кемпер занят, если хотя бы одно активное
// бронирование пересекается с диапазоном
func Compute(campers []*domain.Camper, bookings []*domain.Booking, rng calendar.Range, charge domain.ChargeType) []domain.AvailabilityResult {
	busy := make(map[int64]bool, len(bookings))
	for _, b := range bookings {
		if b.IsActive() && b.Overlaps(rng) {
			busy[b.CamperID] = true
		}
	}

	result := make([]domain.AvailabilityResult, 0, len(campers))
	for _, c := range campers {
		if !c.IsActive {
			continue
		}
		quote := domain.PriceBooking(*c, nil, rng, charge)
		result = append(result, domain.AvailabilityResult{
			Camper:    *c,
			Available: !busy[c.ID],
			Price:     quote.BasePrice,
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Camper.Name < result[j].Camper.Name
	})
	return result
}
