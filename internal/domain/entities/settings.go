package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	DefaultRepositoryPath = "."
	DefaultOutputPath     = "RELEASE_NOTES.md"
)

// Settings holds the options of one invocation, as read from the optional
// configuration file and then overridden by the environment and the CLI.
type Settings struct {
	Repository string `yaml:"repository"`
	Output     string `yaml:"output"`
	From       string `yaml:"from"`
	To         string `yaml:"to"`
	WithTitle  *bool  `yaml:"with_title"`
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// DefaultSettings returns the settings used when nothing else is configured.
func DefaultSettings() *Settings {
	return &Settings{
		Repository: DefaultRepositoryPath,
		Output:     DefaultOutputPath,
	}
}

// NewSettings reads and parses a configuration file on top of the defaults,
// expanding ${VAR} references in path values.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	settings := DefaultSettings()
	if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings.Repository = expandEnv(settings.Repository)
	settings.Output = expandEnv(settings.Output)

	if validateErr := settings.validate(); validateErr != nil {
		return nil, validateErr
	}
	return settings, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	locations := []string{
		".",
		".config",
		"configs",
	}

	patterns := []string{
		".release-notes.yaml",
		".release-notes.yml",
		"release-notes.yaml",
		"release-notes.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// ApplyEnvironment overrides the settings with the legacy CUSTOM_* variables.
// Tags only apply as a pair.
func (it *Settings) ApplyEnvironment(env Environment) {
	if env.RepositoryPath != "" {
		it.Repository = env.RepositoryPath
	}
	if env.OutputPath != "" {
		it.Output = env.OutputPath
	}
	if env.FromTag != "" && env.ToTag != "" {
		it.From = env.FromTag
		it.To = env.ToTag
	}
}

// TitleEnabled reports whether the report starts with a title line.
func (it *Settings) TitleEnabled() bool {
	return it.WithTitle == nil || *it.WithTitle
}

// Tags returns the window requested by the user, or nil when the window
// should be resolved from the repository tags.
func (it *Settings) Tags() *TagRange {
	if it.From == "" && it.To == "" {
		return nil
	}
	return &TagRange{From: it.From, To: it.To}
}

func (it *Settings) validate() error {
	if it.From != "" && it.To == "" {
		return errors.New("config: 'from' requires 'to' to be set")
	}
	return nil
}

// expandEnv expands ${ENV_VAR} references, warning about unset variables.
func expandEnv(raw string) string {
	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}
