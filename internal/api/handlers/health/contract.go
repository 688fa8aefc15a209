package health

import "context"

// Check проверка зависимости (PostgreSQL, Redis)
type Check func(ctx context.Context) error

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
