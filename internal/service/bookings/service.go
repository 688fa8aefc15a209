package bookings

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/m04kA/Truckify-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/Truckify-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/Truckify-BookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями в панели управления
type Service struct {
	bookingRepo BookingRepository
	camperRepo  CamperRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	camperRepo CamperRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		camperRepo:  camperRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// List бронирования с фильтрацией
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) ([]models.BookingResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	booking, err := s.get(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainBooking(booking), nil
}

// Update меняет статус, статус оплаты и данные клиента.
// Восстановление отменённого бронирования повторно проверяет пересечения
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateBookingRequest) (*models.BookingResponse, error) {
	update, err := req.ToDomainUpdate()
	if err != nil {
		s.logger.Warn("Update: invalid request for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var updated *domain.Booking
	err = s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		booking, err := s.get(ctx, "Update", id)
		if err != nil {
			return err
		}

		wasActive := booking.IsActive()
		if err := applyUpdate(booking, update); err != nil {
			return err
		}

		if !wasActive && booking.IsActive() {
			if err := s.ensureFree(ctx, booking); err != nil {
				return err
			}
		}

		updated, err = s.bookingRepo.Update(ctx, booking)
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		if err != nil {
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("Update: booking id=%d not updated: %v", id, err)
		return nil, err
	}

	s.logger.Info("Update: booking id=%d updated (status=%s, payment=%s)", id, updated.Status, updated.PaymentStatus)
	return models.FromDomainBooking(updated), nil
}

// Cancel отменяет бронирование, освобождая даты
func (s *Service) Cancel(ctx context.Context, id int64) error {
	booking, err := s.get(ctx, "Cancel", id)
	if err != nil {
		return err
	}

	if !booking.IsActive() {
		s.logger.Warn("Cancel: booking id=%d already cancelled", id)
		return ErrAlreadyCancelled
	}

	err = s.bookingRepo.UpdateStatus(ctx, id, domain.StatusCancelled)
	if errors.Is(err, bookingRepo.ErrBookingNotFound) {
		return ErrBookingNotFound
	}
	if err != nil {
		s.logger.Error("Cancel: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: booking id=%d cancelled", id)
	return nil
}

func (s *Service) get(ctx context.Context, op string, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}

func (s *Service) ensureFree(ctx context.Context, booking *domain.Booking) error {
	camperID := booking.CamperID
	overlapping, err := s.bookingRepo.ListOverlapping(ctx, booking.Range(), &camperID)
	if err != nil {
		return fmt.Errorf("%w: ensureFree - repository error: %v", ErrInternal, err)
	}
	for _, other := range overlapping {
		if other.ID != booking.ID && other.IsActive() {
			return ErrDatesUnavailable
		}
	}
	return nil
}

func applyUpdate(booking *domain.Booking, update domain.BookingUpdate) error {
	if update.Status != nil {
		booking.Status = *update.Status
	}
	if update.PaymentStatus != nil {
		booking.PaymentStatus = *update.PaymentStatus
	}
	if update.CustomerName != nil {
		name := strings.TrimSpace(*update.CustomerName)
		if name == "" || len(name) > domain.MaxNameLength {
			return fmt.Errorf("%w: customer_name is required and at most %d characters", ErrInvalidInput, domain.MaxNameLength)
		}
		booking.CustomerName = name
	}
	if update.CustomerEmail != nil {
		if _, err := mail.ParseAddress(*update.CustomerEmail); err != nil {
			return fmt.Errorf("%w: customer_email is not a valid address", ErrInvalidInput)
		}
		booking.CustomerEmail = *update.CustomerEmail
	}
	if update.CustomerPhone != nil {
		booking.CustomerPhone = emptyToNil(*update.CustomerPhone)
	}
	if update.CustomerMessage != nil {
		if len(*update.CustomerMessage) > domain.MaxCustomerMessageLen {
			return fmt.Errorf("%w: customer_message is too long", ErrInvalidInput)
		}
		booking.CustomerMessage = emptyToNil(*update.CustomerMessage)
	}
	return nil
}

func emptyToNil(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}
