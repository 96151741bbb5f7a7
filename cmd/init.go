package cmd

import (
	"fmt"

	"github.com/nexent-labs/modelctl/internal/cli"
	"github.com/nexent-labs/modelctl/internal/filesystem"
	"github.com/nexent-labs/modelctl/internal/setup"
	"github.com/spf13/cobra"
)

// NewInitCmd creates an interactive init command
func NewInitCmd(container *cli.Container) *cobra.Command {
	cmd := &cobra.Command{
		Version: container.Config.Version.VersionText(),
		Use:     "init",
		Short:   "Configure modelctl with a guided setup",
		Long:    `Start an interactive wizard to configure the registry connection and import policies.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer container.Logger.Sync()
			container.Logger.Info("Starting setup wizard", nil)

			initializer := setup.NewInitializer(
				setup.NewFileConfigManager(container.Paths[filesystem.SettingsFilePath]),
				container.ThemeMgr.GetCurrentTheme(),
			)

			if err := initializer.Run(); err != nil {
				container.Logger.Errorf("Setup failed: %v", err)
				container.ThemeMgr.GetCurrentTheme().Error().Println(fmt.Sprintf("Setup failed: %v", err))
				return err
			}

			container.Logger.Info("Setup complete", nil)

			container.ThemeMgr.GetCurrentTheme().Info().Println("\nRun 'modelctl import --file models.json' to register your models.")
			container.ThemeMgr.GetCurrentTheme().Info().Println("Run 'modelctl help' to see the available commands.")
			return nil
		},
	}

	return cmd
}
