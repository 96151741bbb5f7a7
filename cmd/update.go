package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/rhysd/go-github-selfupdate/selfupdate"
	"github.com/spf13/cobra"

	"github.com/nexent-labs/modelctl/internal/cli"
	"github.com/nexent-labs/modelctl/internal/config"
	"github.com/nexent-labs/modelctl/internal/theme"
)

// NewUpdateCmd creates a new update command
func NewUpdateCmd(container *cli.Container) *cobra.Command {
	updateCmd := &cobra.Command{
		Version: container.Config.Version.VersionText(),
		Use:     "update",
		Short:   "Check for updates and update the CLI",
		Long:    "Check for updates and if a new version is available, download and install it",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdate(container.ThemeMgr.GetCurrentTheme(), container.Config.Repository, container.Config.Version.Version)
		},
	}

	return updateCmd
}

func runUpdate(t theme.Theme, repository config.Repository, currentAppVersion string) error {
	t.Info().Println(
		fmt.Sprintf("Checking for updates for %s/%s... [Current version: %s]",
			repository.Owner,
			repository.Repo,
			currentAppVersion,
		),
	)

	latest, found, err := selfupdate.DetectLatest(fmt.Sprintf("%s/%s", repository.Owner, repository.Repo))
	if err != nil {
		return fmt.Errorf("error detecting version: %s", err)
	}

	if latest == nil {
		t.Warning().Println("No updates found")
		return nil
	}

	if !found || isCurrentVersion(currentAppVersion, latest.Version.String()) {
		t.Success().Println(fmt.Sprintf("Current version (%s) is the latest", currentAppVersion))
		return nil
	}

	t.Primary().Println(fmt.Sprintf("New version available: %s (current: %s)", latest.Version, currentAppVersion))
	t.Subtle().Println(fmt.Sprintf("Release notes:\n%s", latest.ReleaseNotes))

	confirmed := false
	prompt := &survey.Confirm{Message: "Do you want to update?"}
	if err := survey.AskOne(prompt, &confirmed); err != nil {
		return err
	}
	if !confirmed {
		t.Warning().Println("Update cancelled")
		return nil
	}

	t.Info().Println("Downloading and installing update...")

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("could not locate executable path: %s", err)
	}

	if err := selfupdate.UpdateTo(latest.AssetURL, exe); err != nil {
		return fmt.Errorf("error updating binary: %s", err)
	}

	t.Success().Println(fmt.Sprintf("Successfully updated to version %s", latest.Version))
	return nil
}

// isCurrentVersion compares release versions ignoring a leading "v" on
// either side.
func isCurrentVersion(installed, released string) bool {
	return strings.TrimPrefix(installed, "v") == strings.TrimPrefix(released, "v")
}
