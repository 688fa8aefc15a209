package uploads

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_Save(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	name, err := store.Save(context.Background(), ".PNG", strings.NewReader("image"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, ".png"))

	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, "image", string(data))

	other, err := store.Save(context.Background(), ".png", strings.NewReader("image"))
	require.NoError(t, err)
	assert.NotEqual(t, name, other)
}

func TestFileStore_RejectsPathInExtension(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Save(context.Background(), "./../x", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrInvalidName)

	_, err = store.Save(context.Background(), "png", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrInvalidName)
}
