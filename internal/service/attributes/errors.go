package attributes

import "errors"

var (
	// ErrAttributeNotFound возвращается, когда опция не найдена
	ErrAttributeNotFound = errors.New("attribute not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("attributes.service: internal error")
)
