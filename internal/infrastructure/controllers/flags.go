package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/releasenotes/internal/domain/entities"
)

const (
	flagConfig     = "config"
	flagEnvFile    = "env-file"
	flagVerbose    = "verbose"
	flagRepository = "repository"
	flagOutput     = "output"
	flagFrom       = "from"
	flagTo         = "to"
	flagWithTitle  = "with-title"
	flagStdout     = "stdout"
)

// AddSharedFlags adds the persistent flags every controller reads.
func AddSharedFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP(flagConfig, "c", "",
		"Path to config file (default: auto-detect)")
	cmd.PersistentFlags().String(flagEnvFile, "",
		"Dotenv file providing CI variables (GITHUB_REPOSITORY, CI_PROJECT_URL, ...)")
	cmd.PersistentFlags().BoolP(flagVerbose, "v", false,
		"Enable verbose output")
	cmd.PersistentFlags().StringP(flagRepository, "r", entities.DefaultRepositoryPath,
		"Path to the Git repository")
}
