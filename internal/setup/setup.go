// Package setup implements the interactive configuration wizard.
package setup

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	"github.com/nexent-labs/modelctl/internal/config"
	"github.com/nexent-labs/modelctl/internal/theme"
)

// Initializer handles the interactive setup process
type Initializer struct {
	Settings     config.Settings
	IsUpdateMode bool

	configManager ConfigManager
	theme         theme.Theme
}

// NewInitializer creates a new initializer writing to the given config manager.
func NewInitializer(cm ConfigManager, t theme.Theme) *Initializer {
	return &Initializer{
		configManager: cm,
		theme:         t,
	}
}

// Run starts the interactive configuration process
func (i *Initializer) Run() error {
	var err error

	i.IsUpdateMode = i.configManager.Exists()
	if i.IsUpdateMode {
		i.Settings, err = i.configManager.Load()
		if err != nil {
			return fmt.Errorf("error loading settings: %w", err)
		}
		i.theme.Primary().Println("🔄 Settings Update Mode")
		i.theme.Info().Println("Existing settings detected. Press Enter to keep current values, or provide new ones.")
	} else {
		defaults, err := config.LoadSettings("")
		if err != nil {
			return fmt.Errorf("error preparing default settings: %w", err)
		}
		i.Settings = *defaults
		i.theme.Primary().Println("🔧 Initial Setup")
		i.theme.Info().Println("Configure the connection to your model registry. You can change these later.")
	}

	fmt.Println()

	if err := i.configureRegistry(); err != nil {
		return err
	}
	if err := i.configurePolicies(); err != nil {
		return err
	}

	if err := i.configManager.Save(i.Settings); err != nil {
		return fmt.Errorf("error saving settings: %w", err)
	}

	if i.IsUpdateMode {
		i.theme.Success().Println("\n✅ Settings updated successfully!")
	} else {
		i.theme.Success().Println("\n✅ modelctl configured successfully!")
	}

	return nil
}

// configureRegistry collects the registry endpoint and credentials.
func (i *Initializer) configureRegistry() error {
	i.theme.Info().Println("\n🌐 Registry Connection")

	promptURL := &survey.Input{
		Message: "Registry base URL:",
		Default: i.Settings.BaseURL,
	}
	if err := survey.AskOne(promptURL, &i.Settings.BaseURL, survey.WithValidator(survey.Required)); err != nil {
		return err
	}
	i.Settings.BaseURL = strings.TrimRight(i.Settings.BaseURL, "/")

	var token string
	promptToken := &survey.Password{
		Message: "API token (leave empty for none):",
		Help:    "Sent as a bearer token on every registry request",
	}
	if i.Settings.Token != "" {
		i.theme.Warning().Println("A token is already set. Press Enter to keep the existing token.")
	}
	if err := survey.AskOne(promptToken, &token); err != nil {
		return err
	}
	if token != "" {
		i.Settings.Token = token
	}

	return nil
}

// configurePolicies collects the load-time policy choices.
func (i *Initializer) configurePolicies() error {
	i.theme.Info().Println("\n⚙️ Import Policies")

	var unresolved string
	promptUnresolved := &survey.Select{
		Message: "When a ${VAR} placeholder has no environment value:",
		Options: []string{string(config.UnresolvedKeep), string(config.UnresolvedFail)},
		Default: string(i.Settings.OnUnresolved),
		Help:    "keep: leave the placeholder text as-is (with a warning). fail: abort the import.",
	}
	if err := survey.AskOne(promptUnresolved, &unresolved); err != nil {
		return err
	}
	i.Settings.OnUnresolved = config.UnresolvedPolicy(unresolved)

	var duplicate string
	promptDuplicate := &survey.Select{
		Message: "When a config file repeats a model_name:",
		Options: []string{
			string(config.DuplicateReject),
			string(config.DuplicateSkip),
			string(config.DuplicateLastWins),
		},
		Default: string(i.Settings.OnDuplicate),
	}
	if err := survey.AskOne(promptDuplicate, &duplicate); err != nil {
		return err
	}
	i.Settings.OnDuplicate = config.DuplicatePolicy(duplicate)

	return nil
}
