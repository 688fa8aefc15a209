package get_calendar_data

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном месяце или годе
	ErrInvalidInput = errors.New("get_calendar_data: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_calendar_data: internal error")
)
