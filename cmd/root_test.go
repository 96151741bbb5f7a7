package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexent-labs/modelctl/internal/cli"
	"github.com/nexent-labs/modelctl/internal/config"
	"github.com/nexent-labs/modelctl/internal/logger"
	"github.com/nexent-labs/modelctl/internal/theme"
)

func testContainer(t *testing.T) *cli.Container {
	t.Helper()

	settings, err := config.LoadSettings(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	return &cli.Container{
		Config: &config.AppConfig{
			Name:    "modelctl",
			Version: config.Version{Version: "0.0.1"},
		},
		Settings: settings,
		Logger:   logger.Discard,
		ThemeMgr: theme.NewManager(theme.NewDefaultTheme()),
	}
}

func writeAltSettings(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
base_url: https://alt-registry
token: alt-token
`), 0600))
	return path
}

func TestRootCmd_ConfigFlagLoadsAlternateSettings(t *testing.T) {
	container := testContainer(t)

	cmd := NewRootCmd(container)
	cmd.SetArgs([]string{"--config", writeAltSettings(t)})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "https://alt-registry", container.Settings.BaseURL)
	assert.Equal(t, "alt-token", container.Settings.Token)
}

func TestRootCmd_FlagsWinOverConfigFile(t *testing.T) {
	container := testContainer(t)

	cmd := NewRootCmd(container)
	cmd.SetArgs([]string{"--config", writeAltSettings(t), "--base-url", "https://from-flag"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "https://from-flag", container.Settings.BaseURL)
	assert.Equal(t, "alt-token", container.Settings.Token)
}

func TestRootCmd_ConfigFlagMissingFile(t *testing.T) {
	container := testContainer(t)

	cmd := NewRootCmd(container)
	cmd.SetArgs([]string{"--config", "/nonexistent/settings.yaml"})
	assert.Error(t, cmd.Execute())
}

func TestRootCmd_WithoutConfigFlagKeepsSettings(t *testing.T) {
	container := testContainer(t)
	container.Settings.BaseURL = "https://preloaded"

	cmd := NewRootCmd(container)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "https://preloaded", container.Settings.BaseURL)
}
