package settings

import "errors"

var (
	// ErrSettingsNotFound настройки ещё не сохранялись
	ErrSettingsNotFound = errors.New("settings.repository: settings not found")

	ErrBuildQuery = errors.New("settings.repository: failed to build query")
	ErrExecQuery  = errors.New("settings.repository: failed to execute query")
	ErrScanRow    = errors.New("settings.repository: failed to scan row")
)
