package environment

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"github.com/rios0rios0/releasenotes/internal/domain/entities"
	"github.com/rios0rios0/releasenotes/internal/domain/repositories"
)

// knownVariables are the only variables read from the environment.
//
//nolint:gochecknoglobals // fixed lookup table
var knownVariables = map[string]struct{}{
	"GITHUB_REPOSITORY":      {},
	"GITHUB_SERVER_URL":      {},
	"CI_PROJECT_URL":         {},
	"CUSTOM_REPOSITORY_PATH": {},
	"CUSTOM_OUTPUT_PATH":     {},
	"CUSTOM_FROM_TAG":        {},
	"CUSTOM_TO_TAG":          {},
}

// KoanfEnvironmentRepository implements repositories.EnvironmentRepository
// with koanf, layering the process environment over an optional dotenv file.
type KoanfEnvironmentRepository struct{}

// NewKoanfEnvironmentRepository creates a new environment repository.
func NewKoanfEnvironmentRepository() repositories.EnvironmentRepository {
	return &KoanfEnvironmentRepository{}
}

// Load samples the environment once. Non-empty process variables win over
// the file.
func (it *KoanfEnvironmentRepository) Load(envFile string) (entities.Environment, error) {
	k := koanf.New(".")

	if envFile != "" {
		values, err := godotenv.Read(envFile)
		if err != nil {
			return entities.Environment{}, fmt.Errorf("failed to read env file %q: %w", envFile, err)
		}
		for name, value := range values {
			if key := envTransform(name); key != "" {
				if setErr := k.Set(key, value); setErr != nil {
					return entities.Environment{}, fmt.Errorf("failed to set %q: %w", name, setErr)
				}
			}
		}
	}

	if err := k.Load(env.ProviderWithValue("", ".", envValueTransform), nil); err != nil {
		return entities.Environment{}, fmt.Errorf("failed to load environment: %w", err)
	}

	var environment entities.Environment
	if err := k.Unmarshal("", &environment); err != nil {
		return entities.Environment{}, fmt.Errorf("failed to unmarshal environment: %w", err)
	}
	return environment, nil
}

// envValueTransform drops empty variables so they do not mask the env file.
func envValueTransform(name, value string) (string, interface{}) {
	if value == "" {
		return "", nil
	}
	return envTransform(name), value
}

// envTransform converts environment variable names to config keys, skipping
// everything outside knownVariables.
// Example: GITHUB_REPOSITORY -> github_repository
func envTransform(name string) string {
	if _, ok := knownVariables[name]; !ok {
		return ""
	}
	return strings.ToLower(name)
}
