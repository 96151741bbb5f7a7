package cmd

import (
	"fmt"
	"github.com/fatih/color"
	"github.com/nexent-labs/modelctl/internal/cli"
	"github.com/nexent-labs/modelctl/internal/filesystem"
	"github.com/spf13/cobra"
	"os"
)

// NewConfigCmd creates a config command
func NewConfigCmd(container *cli.Container) *cobra.Command {
	cfgCmd := &cobra.Command{
		Version: container.Config.Version.VersionText(),
		Use:     "config",
		Short:   "Manage modelctl settings",
		Long:    `Commands to manage and view your modelctl settings.`,
	}

	cfgCmd.AddCommand(newConfigPreviewCmd(container))
	return cfgCmd
}

// newConfigPreviewCmd creates a command to preview the settings file
func newConfigPreviewCmd(container *cli.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Preview the current settings file",
		Long:  `Display the content of your modelctl settings file.`,
		Run: func(cmd *cobra.Command, args []string) {
			settingsPath := container.Paths[filesystem.SettingsFilePath]
			settingsData, err := os.ReadFile(settingsPath)
			if err != nil {
				color.Red("Error reading settings file: %v", err)
				os.Exit(1)
			}

			color.New(color.FgHiCyan, color.Bold).Println("\n📄 Settings File")
			color.New(color.FgHiWhite).Printf("Located at: %s\n\n", settingsPath)

			fmt.Println(string(settingsData))
		},
	}

	return cmd
}
