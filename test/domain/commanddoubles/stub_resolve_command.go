//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/releasenotes/internal/domain/commands"
	"github.com/rios0rios0/releasenotes/internal/domain/entities"
)

// StubResolveCommand is a stub implementation of commands.Resolve.
type StubResolveCommand struct {
	ExecuteCallCount   int
	ExecuteErr         error
	Window             entities.TagRange
	LastRepositoryPath string
}

var _ commands.Resolve = (*StubResolveCommand)(nil)

func (s *StubResolveCommand) Execute(_ context.Context, repositoryPath string) (entities.TagRange, error) {
	s.ExecuteCallCount++
	s.LastRepositoryPath = repositoryPath
	return s.Window, s.ExecuteErr
}
