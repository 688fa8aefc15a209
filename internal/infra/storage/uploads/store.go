// Package uploads хранит загруженные изображения на диске.
package uploads

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

type FileStore struct {
	dir string
}

// NewFileStore создает каталог, если его нет
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: NewFileStore - mkdir %s: %v", ErrStore, dir, err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) Dir() string {
	return s.dir
}

// Save пишет содержимое в файл <uuid><ext> и возвращает его имя
func (s *FileStore) Save(ctx context.Context, ext string, content io.Reader) (string, error) {
	if ext != "" && (!strings.HasPrefix(ext, ".") || strings.ContainsAny(ext, `/\`)) {
		return "", fmt.Errorf("%w: extension %q", ErrInvalidName, ext)
	}
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: Save - context: %v", ErrStore, err)
	}

	name := uuid.NewString() + strings.ToLower(ext)
	path := filepath.Join(s.dir, name)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("%w: Save - create: %v", ErrStore, err)
	}

	if _, err := io.Copy(f, content); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("%w: Save - write: %v", ErrStore, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("%w: Save - close: %v", ErrStore, err)
	}

	return name, nil
}
