package middleware

import (
	"context"
	"time"

	"github.com/m04kA/Truckify-BookingService/internal/domain"
)

// MetricsCollector HTTP метрики
type MetricsCollector interface {
	ObserveHTTPRequest(method, route string, status int, duration time.Duration)
}

// SettingsProvider язык страницы бронирования по умолчанию
type SettingsProvider interface {
	Current(ctx context.Context) (*domain.Settings, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
