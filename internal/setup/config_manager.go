package setup

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nexent-labs/modelctl/internal/config"
)

// ConfigManager loads and saves the settings file.
type ConfigManager interface {
	Load() (config.Settings, error)
	Save(config.Settings) error
	Exists() bool
}

// FileConfigManager implements ConfigManager on top of a YAML file.
type FileConfigManager struct {
	path string
}

// NewFileConfigManager creates a manager for the settings file at path.
func NewFileConfigManager(path string) *FileConfigManager {
	return &FileConfigManager{path: path}
}

// Load reads the settings file, falling back to loader defaults when the
// file is missing or empty.
func (cm *FileConfigManager) Load() (config.Settings, error) {
	if cm.path == "" {
		return config.Settings{}, fmt.Errorf("settings file path not set")
	}

	settings, err := config.LoadSettings(cm.path)
	if err != nil {
		return config.Settings{}, err
	}
	return *settings, nil
}

// Save writes the settings to disk as YAML.
func (cm *FileConfigManager) Save(s config.Settings) error {
	if cm.path == "" {
		return fmt.Errorf("settings file path not set")
	}

	yamlData, err := yaml.Marshal(&s)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	return os.WriteFile(cm.path, yamlData, 0600)
}

// Exists checks if a non-empty settings file is already present.
func (cm *FileConfigManager) Exists() bool {
	info, err := os.Stat(cm.path)
	return err == nil && info.Size() > 0
}
