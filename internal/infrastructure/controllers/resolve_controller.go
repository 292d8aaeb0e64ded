package controllers

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/releasenotes/internal/domain/commands"
	"github.com/rios0rios0/releasenotes/internal/domain/entities"
	"github.com/rios0rios0/releasenotes/internal/domain/repositories"
)

// ResolveController handles the "tags" subcommand.
type ResolveController struct {
	command               commands.Resolve
	environmentRepository repositories.EnvironmentRepository
}

// NewResolveController creates a new ResolveController.
func NewResolveController(
	command commands.Resolve,
	environmentRepository repositories.EnvironmentRepository,
) *ResolveController {
	return &ResolveController{
		command:               command,
		environmentRepository: environmentRepository,
	}
}

// GetBind returns the Cobra command metadata for the resolve controller.
func (it *ResolveController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "tags",
		Short: "Print the tag window release notes would be generated for",
		Long: `Print the "from...to" tag window picked from the repository tags,
using the same rules as the release notes themselves.`,
	}
}

// AddFlags has nothing to add: the repository flag is shared.
func (it *ResolveController) AddFlags(_ *cobra.Command) {}

// Execute prints the resolved window.
func (it *ResolveController) Execute(cmd *cobra.Command, _ []string) error {
	settings, _, err := loadSettings(cmd, it.environmentRepository)
	if err != nil {
		return err
	}

	window, err := it.command.Execute(context.Background(), settings.Repository)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s...%s\n", entities.WindowStart(window), window.To)
	return err
}
