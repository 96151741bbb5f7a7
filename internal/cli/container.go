package cli

import (
	"fmt"

	"github.com/nexent-labs/modelctl/internal/config"
	"github.com/nexent-labs/modelctl/internal/filesystem"
	"github.com/nexent-labs/modelctl/internal/logger"
	"github.com/nexent-labs/modelctl/internal/theme"
)

// Container holds all application dependencies
type Container struct {
	Config   *config.AppConfig
	Settings *config.Settings
	Paths    map[filesystem.PathType]string
	Logger   logger.Logger
	ThemeMgr *theme.Manager
}

// InitOptions contains options for initialization
type InitOptions struct {
	Version  string
	Commit   string
	Date     string
	LogLevel logger.LogLevel
	Theme    theme.Theme
}

// NewContainer creates and initializes all application dependencies
func NewContainer(opts InitOptions) (*Container, error) {
	if opts.Version == "" {
		return nil, fmt.Errorf("version is required")
	}
	if opts.LogLevel == "" {
		opts.LogLevel = logger.InfoLevel
	}
	if opts.Theme == nil {
		opts.Theme = theme.NewDefaultTheme()
	}

	container := &Container{
		Config: &config.AppConfig{
			Name: "modelctl",
			Repository: config.Repository{
				Owner: "nexent-labs",
				Repo:  "modelctl",
			},
			Version: config.Version{
				Version: opts.Version,
				Commit:  opts.Commit,
				Date:    opts.Date,
			},
		},
		ThemeMgr: theme.NewManager(opts.Theme),
	}

	var err error
	container.Paths, err = filesystem.NewAppFilesystem(container.Config).EnsureAllPaths()
	if err != nil {
		return nil, fmt.Errorf("failed to ensure all application paths: %w", err)
	}

	container.Settings, err = config.LoadSettings(container.Paths[filesystem.SettingsFilePath])
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	// The settings file decides the log level; opts only supply a fallback.
	logLevel := opts.LogLevel
	if container.Settings.LogLevel != "" {
		logLevel = logger.LogLevel(container.Settings.LogLevel)
	}

	container.Logger, err = logger.NewZapLogger(logger.Config{
		FilePath: container.Paths[filesystem.LogsFilePath],
		LogLevel: logLevel,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return container, nil
}
