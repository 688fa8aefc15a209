package camper

import "errors"

var (
	// ErrCamperNotFound возвращается, когда кемпер не найден
	ErrCamperNotFound = errors.New("camper.repository: camper not found")

	// ErrCamperInUse возвращается при удалении кемпера, на который есть бронирования
	ErrCamperInUse = errors.New("camper.repository: camper has bookings")

	ErrBuildQuery = errors.New("camper.repository: failed to build query")
	ErrExecQuery  = errors.New("camper.repository: failed to execute query")
	ErrScanRow    = errors.New("camper.repository: failed to scan row")
)
