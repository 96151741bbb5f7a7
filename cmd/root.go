package cmd

import (
	"fmt"
	"os"

	"github.com/nexent-labs/modelctl/internal/cli"
	"github.com/nexent-labs/modelctl/internal/config"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command
func NewRootCmd(container *cli.Container) *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Version: container.Config.Version.VersionText(),
		Use:     "modelctl",
		Short:   "Manage model configurations on a Nexent-compatible registry",
		Long: `modelctl registers, verifies and removes AI model configuration
entries on a remote model registry over its HTTP API.

Model endpoints are described in a JSON config file; secrets may be
referenced as ${VAR} placeholders resolved from the environment.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfgFile == "" {
				return nil
			}

			if _, err := os.Stat(cfgFile); err != nil {
				return fmt.Errorf("settings file %s: %w", cfgFile, err)
			}

			loaded, err := config.LoadSettings(cfgFile)
			if err != nil {
				return err
			}

			// Explicit flags still win over the alternate settings file.
			if cmd.Flags().Changed("base-url") {
				loaded.BaseURL = container.Settings.BaseURL
			}
			if cmd.Flags().Changed("token") {
				loaded.Token = container.Settings.Token
			}

			*container.Settings = *loaded
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			container.ThemeMgr.DisplayBanner("Welcome to modelctl", 48, "Model registry management for the CLI")
			container.ThemeMgr.GetCurrentTheme().Warning().Println("\nRun 'modelctl init' to configure the registry connection.")
			container.ThemeMgr.GetCurrentTheme().Info().Println("Run 'modelctl help' to see the available commands.")
			return nil
		},
	}

	// Flag defaults come from the settings file; passing a flag overrides it.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to an alternate settings file")
	rootCmd.PersistentFlags().StringVar(&container.Settings.BaseURL, "base-url", container.Settings.BaseURL, "base URL of the model registry API")
	rootCmd.PersistentFlags().StringVar(&container.Settings.Token, "token", container.Settings.Token, "bearer token for the registry API")

	return rootCmd
}
