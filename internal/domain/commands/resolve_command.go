package commands

import (
	"context"
	"fmt"

	"github.com/rios0rios0/releasenotes/internal/domain/entities"
	"github.com/rios0rios0/releasenotes/internal/domain/repositories"
)

// Resolve is the interface for the resolve command.
type Resolve interface {
	Execute(ctx context.Context, repositoryPath string) (entities.TagRange, error)
}

// ResolveCommand reports the window the generate command would pick on its own.
type ResolveCommand struct {
	openRepository repositories.GitRepositoryFactory
}

// NewResolveCommand creates a new ResolveCommand with the given repository factory.
func NewResolveCommand(openRepository repositories.GitRepositoryFactory) *ResolveCommand {
	return &ResolveCommand{openRepository: openRepository}
}

// Execute returns the resolved tag window of the repository.
func (it *ResolveCommand) Execute(ctx context.Context, repositoryPath string) (entities.TagRange, error) {
	repo, err := it.openRepository(repositoryPath)
	if err != nil {
		return entities.TagRange{}, fmt.Errorf("failed to open repository %q: %w", repositoryPath, err)
	}
	return resolveWindow(ctx, repo)
}
