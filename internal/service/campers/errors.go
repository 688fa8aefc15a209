package campers

import "errors"

var (
	// ErrCamperNotFound возвращается, когда кемпер не найден
	ErrCamperNotFound = errors.New("camper not found")

	// ErrCamperInUse возвращается при удалении кемпера с бронированиями
	ErrCamperInUse = errors.New("camper has bookings")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("campers.service: internal error")
)
