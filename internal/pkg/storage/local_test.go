package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *LocalStorage {
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestLocalStorage_UploadDownload(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	key, err := s.Upload(ctx, strings.NewReader("raw export bytes"), "exports/2024/01/device.dat", "application/octet-stream")
	require.NoError(t, err)
	assert.Equal(t, "exports/2024/01/device.dat", key)

	rc, err := s.Download(ctx, key)
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "raw export bytes", string(data))
}

func TestLocalStorage_Exists(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	exists, err := s.Exists(ctx, "missing.dat")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = s.Upload(ctx, strings.NewReader("x"), "present.dat", "application/octet-stream")
	require.NoError(t, err)

	exists, err = s.Exists(ctx, "present.dat")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestLocalStorage_Delete(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	_, err := s.Upload(ctx, strings.NewReader("x"), "doomed.dat", "application/octet-stream")
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, "doomed.dat"))

	exists, err := s.Exists(ctx, "doomed.dat")
	require.NoError(t, err)
	assert.False(t, exists)

	// Deleting a missing file is not an error
	assert.NoError(t, s.Delete(ctx, "doomed.dat"))
}

func TestLocalStorage_RejectsTraversal(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	_, err := s.Upload(ctx, strings.NewReader("x"), "../outside.dat", "application/octet-stream")
	assert.Error(t, err)

	_, err = s.Download(ctx, "../../etc/passwd")
	assert.Error(t, err)
}
