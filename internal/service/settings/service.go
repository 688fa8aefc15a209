package settings

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/m04kA/Truckify-BookingService/internal/domain"
	settingsRepo "github.com/m04kA/Truckify-BookingService/internal/infra/storage/settings"
	"github.com/m04kA/Truckify-BookingService/internal/service/settings/models"
)

// Service сервис настроек бизнеса
type Service struct {
	settingsRepo SettingsRepository
	logger       Logger
}

func NewService(settingsRepo SettingsRepository, logger Logger) *Service {
	return &Service{settingsRepo: settingsRepo, logger: logger}
}

// Current текущие настройки; значения по умолчанию, если их ещё не сохраняли
func (s *Service) Current(ctx context.Context) (*domain.Settings, error) {
	current, err := s.settingsRepo.Get(ctx)
	if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
		defaults := domain.DefaultSettings()
		return &defaults, nil
	}
	if err != nil {
		s.logger.Error("Current: repository error: %v", err)
		return nil, fmt.Errorf("%w: Current - repository error: %v", ErrInternal, err)
	}
	return current, nil
}

// Get настройки для API
func (s *Service) Get(ctx context.Context) (*models.SettingsResponse, error) {
	current, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}
	return models.FromDomainSettings(current), nil
}

// Update частично обновляет настройки
func (s *Service) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	current, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}

	req.Apply(current)

	if err := validateSettings(current); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	saved, err := s.settingsRepo.Save(ctx, current)
	if err != nil {
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: settings saved (charge_type=%s, auto_accept=%t, min=%d, max=%d)",
		saved.ChargeType, saved.AutoAcceptBookings, saved.MinimumBookingDays, saved.MaximumBookingDays)
	return models.FromDomainSettings(saved), nil
}

func validateSettings(s *domain.Settings) error {
	if !s.ChargeType.Valid() {
		return fmt.Errorf("%w: charge_type must be per_day or per_night", ErrInvalidInput)
	}

	s.BusinessName = strings.TrimSpace(s.BusinessName)
	if s.BusinessName == "" || len(s.BusinessName) > domain.MaxNameLength {
		return fmt.Errorf("%w: business_name is required and at most %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	if s.BusinessEmail != nil {
		if _, err := mail.ParseAddress(*s.BusinessEmail); err != nil {
			return fmt.Errorf("%w: business_email is not a valid address", ErrInvalidInput)
		}
	}

	if !domain.ValidColor(s.CompanyColor) {
		return fmt.Errorf("%w: company_color must be #RRGGBB", ErrInvalidInput)
	}

	if !s.Language.Valid() || !s.BookingPageLanguage.Valid() {
		return fmt.Errorf("%w: language must be one of en, de, fr, nl, es, pt", ErrInvalidInput)
	}

	if s.MinimumBookingDays < 1 {
		return fmt.Errorf("%w: minimum_booking_days must be at least 1", ErrInvalidInput)
	}
	if s.MaximumBookingDays < s.MinimumBookingDays || s.MaximumBookingDays > domain.MaxBookingDaysLimit {
		return fmt.Errorf("%w: maximum_booking_days must be between minimum_booking_days and %d",
			ErrInvalidInput, domain.MaxBookingDaysLimit)
	}

	return nil
}
