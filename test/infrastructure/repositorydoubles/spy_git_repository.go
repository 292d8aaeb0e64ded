//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations, no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/releasenotes/internal/domain/entities"
	"github.com/rios0rios0/releasenotes/internal/domain/repositories"
)

// SpyGitRepository implements repositories.GitRepository as a configurable spy.
// Configure the response fields for the methods your test exercises,
// then inspect the call-tracking fields to verify behavior.
type SpyGitRepository struct {
	// --- ListTags ---
	Tags        []string
	ListTagsErr error

	// --- Log ---
	Commits   []entities.Commit
	LogErr    error
	LogRanges []entities.LogRange

	// --- ShowTagDate ---
	TagDate        string
	ShowTagDateErr error
	DatedTags      []string
}

var _ repositories.GitRepository = (*SpyGitRepository)(nil)

func (s *SpyGitRepository) ListTags(_ context.Context) ([]string, error) {
	return s.Tags, s.ListTagsErr
}

func (s *SpyGitRepository) Log(_ context.Context, logRange entities.LogRange) ([]entities.Commit, error) {
	s.LogRanges = append(s.LogRanges, logRange)
	return s.Commits, s.LogErr
}

func (s *SpyGitRepository) ShowTagDate(_ context.Context, tag string) (string, error) {
	s.DatedTags = append(s.DatedTags, tag)
	return s.TagDate, s.ShowTagDateErr
}

// Factory returns a repositories.GitRepositoryFactory that hands out this spy
// and records the requested paths into openedPaths when it is not nil.
func (s *SpyGitRepository) Factory(openedPaths *[]string) repositories.GitRepositoryFactory {
	return func(path string) (repositories.GitRepository, error) {
		if openedPaths != nil {
			*openedPaths = append(*openedPaths, path)
		}
		return s, nil
	}
}

// FailingGitRepositoryFactory returns a factory that never opens a repository.
func FailingGitRepositoryFactory(err error) repositories.GitRepositoryFactory {
	return func(_ string) (repositories.GitRepository, error) {
		return nil, err
	}
}
