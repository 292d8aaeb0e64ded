//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/releasenotes/internal/domain/entities"
	"github.com/rios0rios0/releasenotes/internal/domain/repositories"
)

// StubEnvironmentRepository is a stub implementation of repositories.EnvironmentRepository.
type StubEnvironmentRepository struct {
	Environment entities.Environment
	LoadErr     error
	LoadedFiles []string
}

var _ repositories.EnvironmentRepository = (*StubEnvironmentRepository)(nil)

func (s *StubEnvironmentRepository) Load(envFile string) (entities.Environment, error) {
	s.LoadedFiles = append(s.LoadedFiles, envFile)
	return s.Environment, s.LoadErr
}
