package models

import (
	"time"

	"github.com/m04kA/Truckify-BookingService/internal/domain"
)

// UpdateSettingsRequest запрос на обновление настроек
// Все поля опциональны - обновляются только переданные значения
type UpdateSettingsRequest struct {
	ChargeType          *string `json:"charge_type,omitempty"`
	AutoAcceptBookings  *bool   `json:"auto_accept_bookings,omitempty"`
	BusinessName        *string `json:"business_name,omitempty"`
	BusinessEmail       *string `json:"business_email,omitempty"`
	BusinessPhone       *string `json:"business_phone,omitempty"`
	CompanyColor        *string `json:"company_color,omitempty"`
	CompanyLogo         *string `json:"company_logo,omitempty"`
	Language            *string `json:"language,omitempty"`
	BookingPageLanguage *string `json:"booking_page_language,omitempty"`
	MinimumBookingDays  *int    `json:"minimum_booking_days,omitempty"`
	MaximumBookingDays  *int    `json:"maximum_booking_days,omitempty"`
}

// Apply применяет переданные поля к текущим настройкам
func (r *UpdateSettingsRequest) Apply(s *domain.Settings) {
	if r.ChargeType != nil {
		s.ChargeType = domain.ChargeType(*r.ChargeType)
	}
	if r.AutoAcceptBookings != nil {
		s.AutoAcceptBookings = *r.AutoAcceptBookings
	}
	if r.BusinessName != nil {
		s.BusinessName = *r.BusinessName
	}
	if r.BusinessEmail != nil {
		s.BusinessEmail = nilIfEmpty(*r.BusinessEmail)
	}
	if r.BusinessPhone != nil {
		s.BusinessPhone = nilIfEmpty(*r.BusinessPhone)
	}
	if r.CompanyColor != nil {
		s.CompanyColor = *r.CompanyColor
	}
	if r.CompanyLogo != nil {
		s.CompanyLogo = nilIfEmpty(*r.CompanyLogo)
	}
	if r.Language != nil {
		s.Language = domain.Language(*r.Language)
	}
	if r.BookingPageLanguage != nil {
		s.BookingPageLanguage = domain.Language(*r.BookingPageLanguage)
	}
	if r.MinimumBookingDays != nil {
		s.MinimumBookingDays = *r.MinimumBookingDays
	}
	if r.MaximumBookingDays != nil {
		s.MaximumBookingDays = *r.MaximumBookingDays
	}
}

// SettingsResponse настройки в ответе API
type SettingsResponse struct {
	ChargeType          string     `json:"charge_type"`
	AutoAcceptBookings  bool       `json:"auto_accept_bookings"`
	BusinessName        string     `json:"business_name"`
	BusinessEmail       *string    `json:"business_email,omitempty"`
	BusinessPhone       *string    `json:"business_phone,omitempty"`
	CompanyColor        string     `json:"company_color"`
	CompanyLogo         *string    `json:"company_logo,omitempty"`
	Language            string     `json:"language"`
	BookingPageLanguage string     `json:"booking_page_language"`
	MinimumBookingDays  int        `json:"minimum_booking_days"`
	MaximumBookingDays  int        `json:"maximum_booking_days"`
	UpdatedAt           *time.Time `json:"updated_at,omitempty"`
}

func FromDomainSettings(s *domain.Settings) *SettingsResponse {
	resp := &SettingsResponse{
		ChargeType:          string(s.ChargeType),
		AutoAcceptBookings:  s.AutoAcceptBookings,
		BusinessName:        s.BusinessName,
		BusinessEmail:       s.BusinessEmail,
		BusinessPhone:       s.BusinessPhone,
		CompanyColor:        s.CompanyColor,
		CompanyLogo:         s.CompanyLogo,
		Language:            string(s.Language),
		BookingPageLanguage: string(s.BookingPageLanguage),
		MinimumBookingDays:  s.MinimumBookingDays,
		MaximumBookingDays:  s.MaximumBookingDays,
	}
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		resp.UpdatedAt = &t
	}
	return resp
}

func nilIfEmpty(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
