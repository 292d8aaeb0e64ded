package repositories

import (
	"context"

	"github.com/rios0rios0/releasenotes/internal/domain/entities"
)

// GitRepository abstracts the version-control backend the report is read from.
type GitRepository interface {
	// ListTags returns every tag name, in no particular order.
	ListTags(ctx context.Context) ([]string, error)

	// Log returns the commits of a range, newest first. An empty From means
	// the whole history reachable from To.
	Log(ctx context.Context, logRange entities.LogRange) ([]entities.Commit, error)

	// ShowTagDate returns the date of the commit a tag points to, formatted
	// as "YYYY-MM-DD HH:MM:SS ±ZZZZ".
	ShowTagDate(ctx context.Context, tag string) (string, error)
}

// GitRepositoryFactory opens the repository found at a path.
type GitRepositoryFactory func(path string) (GitRepository, error)
