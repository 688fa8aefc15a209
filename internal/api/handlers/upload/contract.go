package upload

import (
	"context"
	"io"
)

type FileStore interface {
	Save(ctx context.Context, ext string, content io.Reader) (string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
