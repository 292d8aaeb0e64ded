package controllers

import (
	"context"
	"fmt"
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/releasenotes/internal/domain/commands"
	"github.com/rios0rios0/releasenotes/internal/domain/entities"
	"github.com/rios0rios0/releasenotes/internal/domain/repositories"
)

const outputFileMode = 0o644

// GenerateController handles the root command: it writes the release notes.
type GenerateController struct {
	command               commands.Generate
	environmentRepository repositories.EnvironmentRepository
}

// NewGenerateController creates a new GenerateController.
func NewGenerateController(
	command commands.Generate,
	environmentRepository repositories.EnvironmentRepository,
) *GenerateController {
	return &GenerateController{
		command:               command,
		environmentRepository: environmentRepository,
	}
}

// GetBind returns the Cobra command metadata for the generate controller.
func (it *GenerateController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "release-notes",
		Short: "Generate release notes based on Git commit history",
		Long: `Generate Markdown release notes from the Conventional Commits between two tags.

Without --from/--to the window is picked from the repository tags: the two
latest stable versions, or the latest pre-release and the tag before it.

Links point to GitHub when GITHUB_REPOSITORY is set, to GitLab when
CI_PROJECT_URL is set, and to "#" anchors otherwise.`,
	}
}

// AddFlags adds the generate-specific flags to the given Cobra command.
func (it *GenerateController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP(flagOutput, "o", entities.DefaultOutputPath, "Output file for release notes")
	cmd.Flags().String(flagFrom, "", "Starting tag for release notes (requires --to)")
	cmd.Flags().String(flagTo, "", "Ending tag for release notes")
	cmd.Flags().Bool(flagWithTitle, true, "Include title in the output")
	cmd.Flags().Bool(flagStdout, false, "Print the release notes instead of writing the output file")
}

// Execute generates the release notes and writes them out.
func (it *GenerateController) Execute(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	settings, environment, err := loadSettings(cmd, it.environmentRepository)
	if err != nil {
		logger.Errorf("Error generating release notes: %v", err)
		return err
	}

	report, err := it.command.Execute(ctx, commands.GenerateOptions{
		RepositoryPath: settings.Repository,
		Tags:           settings.Tags(),
		WithTitle:      settings.TitleEnabled(),
		Environment:    environment,
	})
	if err != nil {
		logger.Errorf("Error generating release notes: %v", err)
		return err
	}

	if toStdout, _ := cmd.Flags().GetBool(flagStdout); toStdout {
		_, err = fmt.Fprint(cmd.OutOrStdout(), report)
		return err
	}

	if err = os.WriteFile(settings.Output, []byte(report), outputFileMode); err != nil {
		return fmt.Errorf("failed to write release notes to %q: %w", settings.Output, err)
	}

	logger.Infof("Release notes generated successfully: %s", settings.Output)
	return nil
}
