package controllers

import (
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/releasenotes/internal/domain/entities"
	"github.com/rios0rios0/releasenotes/internal/domain/repositories"
)

// loadSettings merges, from lowest to highest precedence: defaults, the config
// file, the CUSTOM_* environment, and the flags set on the command line.
func loadSettings(
	cmd *cobra.Command,
	environmentRepository repositories.EnvironmentRepository,
) (*entities.Settings, entities.Environment, error) {
	flags := cmd.Flags()

	if verbose, _ := flags.GetBool(flagVerbose); verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	envFile, _ := flags.GetString(flagEnvFile)
	environment, err := environmentRepository.Load(envFile)
	if err != nil {
		return nil, entities.Environment{}, err
	}

	settings, err := readSettingsFile(cmd)
	if err != nil {
		return nil, entities.Environment{}, err
	}
	settings.ApplyEnvironment(environment)

	if flags.Changed(flagRepository) {
		settings.Repository, _ = flags.GetString(flagRepository)
	}
	if flags.Lookup(flagOutput) != nil && flags.Changed(flagOutput) {
		settings.Output, _ = flags.GetString(flagOutput)
	}
	if flags.Lookup(flagTo) != nil && (flags.Changed(flagFrom) || flags.Changed(flagTo)) {
		settings.From, _ = flags.GetString(flagFrom)
		settings.To, _ = flags.GetString(flagTo)
	}
	if flags.Lookup(flagWithTitle) != nil && flags.Changed(flagWithTitle) {
		withTitle, _ := flags.GetBool(flagWithTitle)
		settings.WithTitle = &withTitle
	}

	return settings, environment, nil
}

// readSettingsFile loads the explicit --config file, or the first file found
// in the default locations, or the defaults when there is none.
func readSettingsFile(cmd *cobra.Command) (*entities.Settings, error) {
	cfgPath, _ := cmd.Flags().GetString(flagConfig)
	if cfgPath == "" {
		found, err := entities.FindConfigFile()
		if err != nil {
			logger.Debugf("No config file found, using defaults: %v", err)
			return entities.DefaultSettings(), nil
		}
		cfgPath = found
	}

	logger.Infof("Using config file: %s", cfgPath)
	settings, err := entities.NewSettings(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return settings, nil
}
