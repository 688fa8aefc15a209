package domain

import (
	"regexp"
	"time"
)

// ChargeType способ подсчёта оплачиваемых дней
type ChargeType string

const (
	ChargePerDay   ChargeType = "per_day"
	ChargePerNight ChargeType = "per_night"
)

func (c ChargeType) Valid() bool {
	return c == ChargePerDay || c == ChargePerNight
}

// Language язык интерфейса
type Language string

const (
	LanguageEN Language = "en"
	LanguageDE Language = "de"
	LanguageFR Language = "fr"
	LanguageNL Language = "nl"
	LanguageES Language = "es"
	LanguagePT Language = "pt"
)

// Languages поддерживаемые языки
var Languages = []Language{LanguageEN, LanguageDE, LanguageFR, LanguageNL, LanguageES, LanguagePT}

func (l Language) Valid() bool {
	for _, v := range Languages {
		if v == l {
			return true
		}
	}
	return false
}

var colorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ValidColor цвет в формате #RRGGBB
func ValidColor(c string) bool {
	return colorPattern.MatchString(c)
}

// Settings настройки бизнеса (одна запись)
type Settings struct {
	ChargeType          ChargeType
	AutoAcceptBookings  bool
	BusinessName        string
	BusinessEmail       *string
	BusinessPhone       *string
	CompanyColor        string
	CompanyLogo         *string
	Language            Language
	BookingPageLanguage Language
	MinimumBookingDays  int
	MaximumBookingDays  int
	UpdatedAt           time.Time
}

// DefaultSettings настройки до первого сохранения
func DefaultSettings() Settings {
	return Settings{
		ChargeType:          ChargePerDay,
		AutoAcceptBookings:  false,
		BusinessName:        DefaultBusinessName,
		CompanyColor:        DefaultCompanyColor,
		Language:            LanguageEN,
		BookingPageLanguage: LanguageEN,
		MinimumBookingDays:  DefaultMinimumBookingDays,
		MaximumBookingDays:  DefaultMaximumBookingDays,
	}
}

// InitialStatus статус нового бронирования
func (s Settings) InitialStatus() BookingStatus {
	if s.AutoAcceptBookings {
		return StatusConfirmed
	}
	return StatusReserved
}
