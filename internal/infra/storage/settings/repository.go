package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/Truckify-BookingService/internal/domain"
	"github.com/m04kA/Truckify-BookingService/pkg/dbmetrics"
	"github.com/m04kA/Truckify-BookingService/pkg/psqlbuilder"
)

// singletonID настройки хранятся одной строкой
const singletonID = 1

// Repository репозиторий настроек бизнеса
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get читает настройки; ErrSettingsNotFound, если их ещё не сохраняли
func (r *Repository) Get(ctx context.Context) (*domain.Settings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"charge_type",
		"auto_accept_bookings",
		"business_name",
		"business_email",
		"business_phone",
		"company_color",
		"company_logo",
		"language",
		"booking_page_language",
		"minimum_booking_days",
		"maximum_booking_days",
		"updated_at",
	).
		From("settings").
		Where(squirrel.Eq{"id": singletonID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Settings
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ChargeType,
		&s.AutoAcceptBookings,
		&s.BusinessName,
		&s.BusinessEmail,
		&s.BusinessPhone,
		&s.CompanyColor,
		&s.CompanyLogo,
		&s.Language,
		&s.BookingPageLanguage,
		&s.MinimumBookingDays,
		&s.MaximumBookingDays,
		&s.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan settings: %v", ErrScanRow, err)
	}

	return &s, nil
}

// Save вставляет или обновляет единственную строку настроек
func (r *Repository) Save(ctx context.Context, s *domain.Settings) (*domain.Settings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("settings").
		Columns(
			"id",
			"charge_type",
			"auto_accept_bookings",
			"business_name",
			"business_email",
			"business_phone",
			"company_color",
			"company_logo",
			"language",
			"booking_page_language",
			"minimum_booking_days",
			"maximum_booking_days",
		).
		Values(
			singletonID,
			s.ChargeType,
			s.AutoAcceptBookings,
			s.BusinessName,
			s.BusinessEmail,
			s.BusinessPhone,
			s.CompanyColor,
			s.CompanyLogo,
			s.Language,
			s.BookingPageLanguage,
			s.MinimumBookingDays,
			s.MaximumBookingDays,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
    charge_type = EXCLUDED.charge_type,
    auto_accept_bookings = EXCLUDED.auto_accept_bookings,
    business_name = EXCLUDED.business_name,
    business_email = EXCLUDED.business_email,
    business_phone = EXCLUDED.business_phone,
    company_color = EXCLUDED.company_color,
    company_logo = EXCLUDED.company_logo,
    language = EXCLUDED.language,
    booking_page_language = EXCLUDED.booking_page_language,
    minimum_booking_days = EXCLUDED.minimum_booking_days,
    maximum_booking_days = EXCLUDED.maximum_booking_days,
    updated_at = NOW()
RETURNING updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Save - build upsert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&s.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%w: Save - execute upsert: %v", ErrExecQuery, err)
	}

	return s, nil
}
