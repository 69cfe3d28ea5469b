package tokenstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	s := New(dir)

	token, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, s.Save("static-token"))

	info, err := os.Stat(filepath.Join(dir, "adminToken"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	token, err = s.Load()
	require.NoError(t, err)
	assert.Equal(t, "static-token", token)

	require.NoError(t, s.Clear())
	require.NoError(t, s.Clear())

	token, err = s.Load()
	require.NoError(t, err)
	assert.Empty(t, token)
}
