package main

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/releasenotes/internal"
	"github.com/rios0rios0/releasenotes/internal/domain/entities"
	"github.com/rios0rios0/releasenotes/internal/infrastructure/controllers"
)

func buildCommand(controller entities.Controller) *cobra.Command {
	bind := controller.GetBind()
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:           bind.Use,
		Short:         bind.Short,
		Long:          bind.Long,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			return controller.Execute(command, arguments)
		},
	}
	controller.AddFlags(cmd)
	return cmd
}

func buildRootCommand(appContext *internal.AppInternal) *cobra.Command {
	rootCmd := buildCommand(appContext.GetRootController())
	controllers.AddSharedFlags(rootCmd)

	for _, controller := range appContext.GetControllers() {
		rootCmd.AddCommand(buildCommand(controller))
	}
	return rootCmd
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	appContext := injectAppContext()
	if err := buildRootCommand(appContext).Execute(); err != nil {
		logger.Fatalf("Error executing 'release-notes': %s", err)
	}
}
