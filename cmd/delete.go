package cmd

import (
	"fmt"

	"github.com/nexent-labs/modelctl/internal/cli"
	"github.com/spf13/cobra"
)

// NewDeleteCmd creates the delete command
func NewDeleteCmd(container *cli.Container) *cobra.Command {
	var deleteAll bool

	cmd := &cobra.Command{
		Version: container.Config.Version.VersionText(),
		Use:     "delete [model-name]",
		Short:   "Delete one model or every registered model",
		Long: `Deletes a model configuration entry from the registry by display name,
or with --all lists the registry and deletes every entry. Individual
failures do not stop the remaining deletions.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer container.Logger.Sync()

			if deleteAll == (len(args) == 1) {
				return fmt.Errorf("provide either a model name or --all")
			}

			service, closeHistory := newRegistryService(container, 0)
			defer closeHistory()

			t := container.ThemeMgr.GetCurrentTheme()

			if !deleteAll {
				result := service.Delete(cmd.Context(), args[0])
				if !result.OK {
					t.Error().Println(fmt.Sprintf("❌ %s: %v", result.Model, result.Err))
					return fmt.Errorf("failed to delete model %q", args[0])
				}
				t.Success().Println(fmt.Sprintf("✅ Model %q deleted", args[0]))
				return nil
			}

			t.Info().Println(fmt.Sprintf("🗑️  Deleting all models from %s", container.Settings.BaseURL))

			summary, err := service.DeleteAll(cmd.Context())
			if err != nil {
				t.Error().Println(fmt.Sprintf("Failed to list models: %v", err))
				return err
			}

			return printSummary(t, "delete", summary)
		},
	}

	cmd.Flags().BoolVar(&deleteAll, "all", false, "delete every registered model")

	cmd.Example = "  modelctl delete my-embedding-model\n" +
		"  modelctl delete --all"

	return cmd
}
