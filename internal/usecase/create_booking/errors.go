package create_booking

import "errors"

var (
	// ErrCamperNotFound возвращается, когда кемпер не найден
	ErrCamperNotFound = errors.New("create_booking: camper not found")

	// ErrCamperNotAvailable возвращается, когда кемпер снят с аренды
	ErrCamperNotAvailable = errors.New("create_booking: camper is not available for booking")

	// ErrAttributeNotFound возвращается, когда опция не найдена или неактивна
	ErrAttributeNotFound = errors.New("create_booking: attribute not found")

	// ErrDatesUnavailable возвращается, когда даты пересекаются с активным бронированием кемпера
	ErrDatesUnavailable = errors.New("create_booking: dates are not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
