package cmd

import (
	"fmt"
	"os"

	"github.com/nexent-labs/modelctl/internal/cli"
	"github.com/nexent-labs/modelctl/internal/filesystem"
	"github.com/nexent-labs/modelctl/internal/history"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewHistoryCmd creates a command to show recent operation outcomes
func NewHistoryCmd(container *cli.Container) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Version: container.Config.Version.VersionText(),
		Use:     "history",
		Short:   "Show the outcome of recent registry operations",
		RunE: func(cmd *cobra.Command, args []string) error {
			defer container.Logger.Sync()

			store, err := history.Open(container.Paths[filesystem.HistoryDB])
			if err != nil {
				return fmt.Errorf("opening run history: %w", err)
			}
			defer store.Close()

			entries, err := store.Recent(limit)
			if err != nil {
				return fmt.Errorf("reading run history: %w", err)
			}

			if len(entries) == 0 {
				container.ThemeMgr.GetCurrentTheme().Info().Println("📋 No recorded operations yet.")
				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Time", "Operation", "Model", "Result", "Detail"})
			table.SetBorder(false)
			table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
			table.SetHeaderColor(
				tablewriter.Colors{tablewriter.Bold, tablewriter.FgCyanColor},
				tablewriter.Colors{tablewriter.Bold, tablewriter.FgCyanColor},
				tablewriter.Colors{tablewriter.Bold, tablewriter.FgCyanColor},
				tablewriter.Colors{tablewriter.Bold, tablewriter.FgCyanColor},
				tablewriter.Colors{tablewriter.Bold, tablewriter.FgCyanColor},
			)

			for _, e := range entries {
				result := "OK"
				resultColor := tablewriter.Colors{tablewriter.Bold, tablewriter.FgGreenColor}
				if !e.OK {
					result = "FAILED"
					resultColor = tablewriter.Colors{tablewriter.Bold, tablewriter.FgRedColor}
				}

				table.Rich(
					[]string{e.CreatedAt.Local().Format("2006-01-02 15:04:05"), e.Operation, e.Model, result, e.Detail},
					[]tablewriter.Colors{{}, {}, {}, resultColor, {}},
				)
			}

			table.Render()
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of entries to show")

	return cmd
}
