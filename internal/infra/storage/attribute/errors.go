package attribute

import "errors"

var (
	// ErrAttributeNotFound возвращается, когда опция не найдена
	ErrAttributeNotFound = errors.New("attribute.repository: attribute not found")

	ErrBuildQuery = errors.New("attribute.repository: failed to build query")
	ErrExecQuery  = errors.New("attribute.repository: failed to execute query")
	ErrScanRow    = errors.New("attribute.repository: failed to scan row")
)
