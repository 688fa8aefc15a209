package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Truckify-BookingService/internal/calendar"
	"github.com/m04kA/Truckify-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/Truckify-BookingService/internal/infra/storage/booking"
	camperRepo "github.com/m04kA/Truckify-BookingService/internal/infra/storage/camper"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo   BookingRepository
	camperRepo    CamperRepository
	attributeRepo AttributeRepository
	settings      SettingsProvider
	txManager     TransactionManager
	metrics       Metrics
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	camperRepo CamperRepository,
	attributeRepo AttributeRepository,
	settings SettingsProvider,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		camperRepo:    camperRepo,
		attributeRepo: attributeRepo,
		settings:      settings,
		txManager:     txManager,
		metrics:       metrics,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case создания бронирования
// Проверка пересечений и вставка выполняются в одной сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: camper=%d, start=%s, end=%s, attributes=%v",
		req.CamperID, req.StartDate, req.EndDate, req.AttributeIDs)

	// 1. Валидация данных клиента
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Настройки и проверка диапазона
	settings, err := uc.settings.Current(ctx)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to load settings: %v", err)
		return nil, fmt.Errorf("%w: failed to load settings: %v", ErrInternal, err)
	}

	today := calendar.Today(uc.timeProvider.Now())
	rng, err := domain.ValidateRange(req.StartDate, req.EndDate, today, *settings)
	if err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	// 3. Кемпер
	camper, err := uc.camperRepo.GetByID(ctx, req.CamperID)
	if err != nil {
		if errors.Is(err, camperRepo.ErrCamperNotFound) {
			uc.logger.Warn("CreateBooking: camper id=%d not found", req.CamperID)
			return nil, ErrCamperNotFound
		}
		uc.logger.Error("CreateBooking: failed to get camper id=%d: %v", req.CamperID, err)
		return nil, fmt.Errorf("%w: failed to get camper: %v", ErrInternal, err)
	}
	if !camper.IsActive {
		uc.logger.Warn("CreateBooking: camper id=%d is inactive", req.CamperID)
		return nil, ErrCamperNotAvailable
	}

	// 4. Опции
	attributes, err := uc.loadAttributes(ctx, req.AttributeIDs)
	if err != nil {
		return nil, err
	}

	quote := domain.PriceBooking(*camper, attributes, rng, settings.ChargeType)

	var result *domain.Booking

	// 5. Проверка пересечений и создание в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		overlapping, err := uc.bookingRepo.ListOverlapping(txCtx, rng, &camper.ID)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		for _, b := range overlapping {
			if b.IsActive() && b.Overlaps(rng) {
				uc.logger.Warn("CreateBooking: camper id=%d already booked by id=%d (%s..%s)",
					camper.ID, b.ID, b.StartDate, b.EndDate)
				return ErrDatesUnavailable
			}
		}

		booking := &domain.Booking{
			CamperID:           camper.ID,
			StartDate:          rng.Start,
			EndDate:            rng.End,
			CustomerName:       req.CustomerName,
			CustomerEmail:      req.CustomerEmail,
			CustomerPhone:      req.CustomerPhone,
			CustomerMessage:    req.CustomerMessage,
			BasePrice:          quote.BasePrice,
			AttributesPrice:    quote.AttributesPrice,
			TotalPrice:         quote.TotalPrice,
			SelectedAttributes: req.AttributeIDs,
			Status:             settings.InitialStatus(),
			PaymentStatus:      domain.PaymentNotPaid,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrCamperNotFound) {
				return ErrCamperNotFound
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.metrics.IncBookingCreated(string(result.Status))
	uc.logger.Info("CreateBooking: successfully created booking id=%d, status=%s, total=%.2f",
		result.ID, result.Status, result.TotalPrice)

	return &Response{
		Booking:    result,
		Camper:     camper,
		Attributes: attributes,
		Quote:      quote,
	}, nil
}

// loadAttributes загружает выбранные опции; все должны существовать и быть активны
func (uc *UseCase) loadAttributes(ctx context.Context, ids []int64) ([]domain.Attribute, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	found, err := uc.attributeRepo.GetByIDs(ctx, ids)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get attributes %v: %v", ids, err)
		return nil, fmt.Errorf("%w: failed to get attributes: %v", ErrInternal, err)
	}

	byID := make(map[int64]*domain.Attribute, len(found))
	for _, a := range found {
		byID[a.ID] = a
	}

	result := make([]domain.Attribute, 0, len(ids))
	for _, id := range ids {
		a, ok := byID[id]
		if !ok || !a.IsActive {
			uc.logger.Warn("CreateBooking: attribute id=%d not found or inactive", id)
			return nil, fmt.Errorf("%w: id=%d", ErrAttributeNotFound, id)
		}
		result = append(result, *a)
	}
	return result, nil
}
