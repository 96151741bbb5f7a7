package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexent-labs/modelctl/internal/filesystem"
	"github.com/nexent-labs/modelctl/internal/logger"
)

func writeSettingsFile(t *testing.T, home, content string) {
	t.Helper()

	configDir := filepath.Join(home, ".modelctl", "config")
	require.NoError(t, os.MkdirAll(configDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "settings.yaml"), []byte(content), 0600))
}

func TestNewContainer_RequiresVersion(t *testing.T) {
	_, err := NewContainer(InitOptions{})
	assert.Error(t, err)
}

func TestNewContainer_DefaultsThemeAndLogLevel(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	container, err := NewContainer(InitOptions{Version: "0.0.1"})
	require.NoError(t, err)

	assert.NotNil(t, container.ThemeMgr.GetCurrentTheme())
	assert.NotNil(t, container.Logger)
	assert.Equal(t, "info", container.Settings.LogLevel)
}

func TestNewContainer_SettingsLogLevelFiltersOutput(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeSettingsFile(t, home, "log_level: error\n")

	container, err := NewContainer(InitOptions{
		Version:  "0.0.1",
		LogLevel: logger.DebugLevel,
	})
	require.NoError(t, err)

	container.Logger.Debug("debug entry", nil)
	container.Logger.Info("info entry", nil)
	container.Logger.Error("error entry", nil)
	require.NoError(t, container.Logger.Sync())

	data, err := os.ReadFile(container.Paths[filesystem.LogsFilePath])
	require.NoError(t, err)

	assert.NotContains(t, string(data), "debug entry")
	assert.NotContains(t, string(data), "info entry")
	assert.Contains(t, string(data), "error entry")
}

func TestNewContainer_RejectsInvalidLogLevel(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeSettingsFile(t, home, "log_level: loud\n")

	_, err := NewContainer(InitOptions{Version: "0.0.1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log_level")
}
