//go:build unit

package environment_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/releasenotes/internal/domain/entities"
	"github.com/rios0rios0/releasenotes/internal/infrastructure/repositories/environment"
)

// clearCI hides the variables a CI runner exports for the duration of a test.
func clearCI(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"GITHUB_REPOSITORY", "GITHUB_SERVER_URL", "CI_PROJECT_URL",
		"CUSTOM_REPOSITORY_PATH", "CUSTOM_OUTPUT_PATH", "CUSTOM_FROM_TAG", "CUSTOM_TO_TAG",
	} {
		t.Setenv(name, "")
	}
}

func TestKoanfEnvironmentRepository_Load(t *testing.T) {
	t.Run("should read the known variables from the process", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()

		// given
		clearCI(t)
		t.Setenv("GITHUB_REPOSITORY", "acme/widgets")
		t.Setenv("GITHUB_SERVER_URL", "https://github.example.com")
		t.Setenv("CUSTOM_FROM_TAG", "v1.0.0")
		t.Setenv("CUSTOM_TO_TAG", "v1.1.0")
		repo := environment.NewKoanfEnvironmentRepository()

		// when
		env, err := repo.Load("")

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.Environment{
			GitHubRepository: "acme/widgets",
			GitHubServerURL:  "https://github.example.com",
			FromTag:          "v1.0.0",
			ToTag:            "v1.1.0",
		}, env)
	})

	t.Run("should layer the process over the env file", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()

		// given
		clearCI(t)
		t.Setenv("CUSTOM_OUTPUT_PATH", "from-process.md")
		envFile := filepath.Join(t.TempDir(), "ci.env")
		require.NoError(t, os.WriteFile(envFile, []byte(
			"CI_PROJECT_URL=https://gitlab.com/acme/widgets\n"+
				"CUSTOM_OUTPUT_PATH=from-file.md\n"+
				"UNRELATED=ignored\n",
		), 0o600))
		repo := environment.NewKoanfEnvironmentRepository()

		// when
		env, err := repo.Load(envFile)

		// then
		require.NoError(t, err)
		assert.Equal(t, "https://gitlab.com/acme/widgets", env.ProjectURL)
		assert.Equal(t, "from-process.md", env.OutputPath)
		assert.Empty(t, env.GitHubRepository)
	})

	t.Run("should return error for a missing env file", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()

		// given
		clearCI(t)
		repo := environment.NewKoanfEnvironmentRepository()

		// when
		_, err := repo.Load(filepath.Join(t.TempDir(), "missing.env"))

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read env file")
	})
}
