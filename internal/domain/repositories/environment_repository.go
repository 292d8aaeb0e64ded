package repositories

import "github.com/rios0rios0/releasenotes/internal/domain/entities"

// EnvironmentRepository samples the CI context of the current process.
type EnvironmentRepository interface {
	// Load reads the process environment. When envFile is not empty, the
	// variables it defines fill in whatever the process does not set.
	Load(envFile string) (entities.Environment, error)
}
