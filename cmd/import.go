package cmd

import (
	"fmt"
	"os"

	"github.com/nexent-labs/modelctl/internal/cli"
	"github.com/nexent-labs/modelctl/internal/logger"
	"github.com/nexent-labs/modelctl/internal/registry"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewImportCmd creates the bulk-import command
func NewImportCmd(container *cli.Container) *cobra.Command {
	var (
		configFile string
		parallel   int
		dryRun     bool
	)

	cmd := &cobra.Command{
		Version: container.Config.Version.VersionText(),
		Use:     "import",
		Short:   "Register every model from a JSON config file",
		Long: `Reads a model config file ({"models": [...]}) and issues one create
call per record. ${VAR} placeholders in api_key and base_url are resolved
from the environment. A failing record does not stop the remaining batch.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer container.Logger.Sync()

			loader := registry.NewLoader(
				registry.WithResolver(registry.EnvResolver()),
				registry.WithUnresolvedPolicy(container.Settings.OnUnresolved),
				registry.WithDuplicatePolicy(container.Settings.OnDuplicate),
				registry.WithLoaderLogger(container.Logger),
			)

			models, err := loader.LoadFile(configFile)
			if err != nil {
				container.Logger.WithFields(map[string]interface{}{
					logger.ErrorKey: err,
					"file":          configFile,
				}).Error("failed to load model config", nil)
				container.ThemeMgr.GetCurrentTheme().Error().Println(fmt.Sprintf("Failed to load model config: %v", err))
				return err
			}

			if dryRun {
				container.ThemeMgr.GetCurrentTheme().Info().Println(fmt.Sprintf("Dry run: %d models would be registered", len(models)))
				renderModelConfigTable(models)
				return nil
			}

			service, closeHistory := newRegistryService(container, parallel)
			defer closeHistory()

			container.ThemeMgr.GetCurrentTheme().Info().Println(fmt.Sprintf("🚀 Importing %d models to %s", len(models), container.Settings.BaseURL))

			summary := service.ImportAll(cmd.Context(), models)
			return printSummary(container.ThemeMgr.GetCurrentTheme(), "import", summary)
		},
	}

	cmd.Flags().StringVarP(&configFile, "file", "f", "", "path to the model config JSON file")
	cmd.Flags().IntVar(&parallel, "parallel", 0, "number of concurrent create calls (default: settings value)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "validate and resolve the config without calling the registry")
	_ = cmd.MarkFlagRequired("file")

	cmd.Example = "  modelctl import --file models.json\n" +
		"  modelctl import --file models.json --parallel 4\n" +
		"  modelctl import --file models.json --dry-run"

	return cmd
}

func renderModelConfigTable(models []registry.ModelConfig) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Name", "Type", "Display Name", "Factory", "Base URL", "API Key"})
	table.SetBorder(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderColor(
		tablewriter.Colors{tablewriter.Bold, tablewriter.FgCyanColor},
		tablewriter.Colors{tablewriter.Bold, tablewriter.FgCyanColor},
		tablewriter.Colors{tablewriter.Bold, tablewriter.FgCyanColor},
		tablewriter.Colors{tablewriter.Bold, tablewriter.FgCyanColor},
		tablewriter.Colors{tablewriter.Bold, tablewriter.FgCyanColor},
		tablewriter.Colors{tablewriter.Bold, tablewriter.FgCyanColor},
	)

	for _, m := range models {
		table.Append([]string{
			m.ModelName,
			string(m.ModelType),
			m.DisplayName,
			m.ModelFactory,
			m.BaseURL,
			maskSecret(m.APIKey),
		})
	}

	table.Render()
}
