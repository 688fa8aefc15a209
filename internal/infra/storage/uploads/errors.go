package uploads

import "errors"

var (
	ErrInvalidName = errors.New("uploads: invalid file name")
	ErrStore       = errors.New("uploads: store failed")
)
