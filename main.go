package main

import (
	"fmt"
	"os"

	"github.com/nexent-labs/modelctl/cmd"
	"github.com/nexent-labs/modelctl/internal/cli"
	"github.com/nexent-labs/modelctl/internal/logger"
	"github.com/nexent-labs/modelctl/internal/theme"
)

var version = "0.0.1"
var commit = "none"
var date = "unknown"

func main() {
	container, err := cli.NewContainer(cli.InitOptions{
		Version:  version,
		Commit:   commit,
		Date:     date,
		LogLevel: logger.InfoLevel,
		Theme:    theme.NewProfessionalTheme(),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error during initialization: %v\n", err)
		os.Exit(1)
	}

	log := container.Logger
	log.Infof("%s started", container.Config.Name)

	// setup commands
	rootCmd := cmd.NewRootCmd(container)
	rootCmd.AddCommand(
		cmd.NewInitCmd(container),
		cmd.NewConfigCmd(container),
		cmd.NewImportCmd(container),
		cmd.NewListCmd(container),
		cmd.NewDeleteCmd(container),
		cmd.NewVerifyCmd(container),
		cmd.NewHistoryCmd(container),
		cmd.NewUpdateCmd(container),
	)

	// execute the command
	if err := rootCmd.Execute(); err != nil {
		log.Errorf("%s exited with error: %v", container.Config.Name, err)
		log.Sync()
		os.Exit(1)
	}

	log.Infof("%s exited successfully", container.Config.Name)
	log.Sync()
}
