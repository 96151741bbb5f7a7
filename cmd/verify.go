package cmd

import (
	"fmt"

	"github.com/nexent-labs/modelctl/internal/cli"
	"github.com/spf13/cobra"
)

// NewVerifyCmd creates the verify command
func NewVerifyCmd(container *cli.Container) *cobra.Command {
	var verifyAll bool

	cmd := &cobra.Command{
		Version: container.Config.Version.VersionText(),
		Use:     "verify [model-name]",
		Short:   "Health-check one model or every registered model",
		Long: `Asks the registry to probe the model endpoint and reports pass or
fail per model. A model unknown to the registry always reports failure.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer container.Logger.Sync()

			if verifyAll == (len(args) == 1) {
				return fmt.Errorf("provide either a model name or --all")
			}

			service, closeHistory := newRegistryService(container, 0)
			defer closeHistory()

			t := container.ThemeMgr.GetCurrentTheme()

			if !verifyAll {
				result := service.Verify(cmd.Context(), args[0])
				if !result.OK {
					t.Error().Println(fmt.Sprintf("❌ %s: %v", result.Model, result.Err))
					return fmt.Errorf("model %q failed verification", args[0])
				}
				t.Success().Println(fmt.Sprintf("✅ Model %q is reachable", args[0]))
				return nil
			}

			t.Info().Println(fmt.Sprintf("🔍 Verifying all models on %s", container.Settings.BaseURL))

			summary, err := service.VerifyAll(cmd.Context())
			if err != nil {
				t.Error().Println(fmt.Sprintf("Failed to list models: %v", err))
				return err
			}

			return printSummary(t, "verify", summary)
		},
	}

	cmd.Flags().BoolVar(&verifyAll, "all", false, "verify every registered model")

	cmd.Example = "  modelctl verify my-embedding-model\n" +
		"  modelctl verify --all"

	return cmd
}
