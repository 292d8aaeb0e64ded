package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/releasenotes/internal/domain/repositories"
	envRepo "github.com/rios0rios0/releasenotes/internal/infrastructure/repositories/environment"
	gogitRepo "github.com/rios0rios0/releasenotes/internal/infrastructure/repositories/gogit"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Repositories are opened per invocation, so the factory is registered
	if err := container.Provide(func() domainRepos.GitRepositoryFactory {
		return gogitRepo.NewGoGitRepository
	}); err != nil {
		return err
	}

	if err := container.Provide(envRepo.NewKoanfEnvironmentRepository); err != nil {
		return err
	}

	return nil
}
