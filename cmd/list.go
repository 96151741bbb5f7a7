package cmd

import (
	"fmt"
	"os"

	"github.com/nexent-labs/modelctl/internal/cli"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewListCmd creates the list command
func NewListCmd(container *cli.Container) *cobra.Command {
	cmd := &cobra.Command{
		Version: container.Config.Version.VersionText(),
		Use:     "list",
		Short:   "List the models registered on the registry",
		RunE: func(cmd *cobra.Command, args []string) error {
			defer container.Logger.Sync()

			service, closeHistory := newRegistryService(container, 0)
			defer closeHistory()

			t := container.ThemeMgr.GetCurrentTheme()

			models, err := service.List(cmd.Context())
			if err != nil {
				t.Error().Println(fmt.Sprintf("Failed to list models: %v", err))
				return err
			}

			if len(models) == 0 {
				t.Info().Println("📋 No models registered.")
				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Name", "Type", "Display Name", "Factory", "Base URL"})
			table.SetBorder(false)
			table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
			table.SetHeaderColor(
				tablewriter.Colors{tablewriter.Bold, tablewriter.FgCyanColor},
				tablewriter.Colors{tablewriter.Bold, tablewriter.FgCyanColor},
				tablewriter.Colors{tablewriter.Bold, tablewriter.FgCyanColor},
				tablewriter.Colors{tablewriter.Bold, tablewriter.FgCyanColor},
				tablewriter.Colors{tablewriter.Bold, tablewriter.FgCyanColor},
			)

			for _, m := range models {
				table.Append([]string{m.ModelName, m.ModelType, m.DisplayName, m.ModelFactory, m.BaseURL})
			}

			table.Render()

			t.Subtle().Println(fmt.Sprintf("\n%d models registered on %s", len(models), container.Settings.BaseURL))
			return nil
		},
	}

	return cmd
}
