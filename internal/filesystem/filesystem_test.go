package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nexent-labs/modelctl/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureAllPaths(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	fs := NewAppFilesystem(&config.AppConfig{Name: "modelctl"})

	paths, err := fs.EnsureAllPaths()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".modelctl"), paths[AppDirectory])

	for _, pathType := range []PathType{
		AppDirectory,
		CacheDirectory,
		ConfigDirectory,
		LogsDirectory,
		DataDirectory,
		SettingsFilePath,
		LogsFilePath,
		HistoryDB,
	} {
		p, ok := paths[pathType]
		require.True(t, ok, "missing path for %s", pathType)

		_, err := os.Stat(p)
		assert.NoError(t, err, "path %s (%s) should exist", pathType, p)
	}
}

func TestEnsureAllPathsIsIdempotent(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	fs := NewAppFilesystem(&config.AppConfig{Name: "modelctl"})

	first, err := fs.EnsureAllPaths()
	require.NoError(t, err)

	second, err := fs.EnsureAllPaths()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
