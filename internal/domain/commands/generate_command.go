package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/releasenotes/internal/domain/entities"
	"github.com/rios0rios0/releasenotes/internal/domain/repositories"
)

// Generate is the interface for the generate command.
type Generate interface {
	Execute(ctx context.Context, opts GenerateOptions) (string, error)
}

// GenerateOptions holds runtime options for a single report.
type GenerateOptions struct {
	RepositoryPath string
	Tags           *entities.TagRange // nil resolves the window from the repository tags
	WithTitle      bool
	Environment    entities.Environment
}

// GenerateCommand builds the release notes of a repository:
// resolve tags -> read commits -> categorize -> render.
type GenerateCommand struct {
	openRepository repositories.GitRepositoryFactory
}

// NewGenerateCommand creates a new GenerateCommand with the given repository factory.
func NewGenerateCommand(openRepository repositories.GitRepositoryFactory) *GenerateCommand {
	return &GenerateCommand{openRepository: openRepository}
}

// Execute returns the Markdown release notes for the requested window.
func (it *GenerateCommand) Execute(ctx context.Context, opts GenerateOptions) (string, error) {
	repo, err := it.openRepository(opts.RepositoryPath)
	if err != nil {
		return "", fmt.Errorf("failed to open repository %q: %w", opts.RepositoryPath, err)
	}

	window, err := it.window(ctx, repo, opts.Tags)
	if err != nil {
		return "", err
	}

	rawDate, err := repo.ShowTagDate(ctx, window.To)
	if err != nil {
		return "", fmt.Errorf("failed to read the date of tag %s: %w", window.To, err)
	}

	releaseDate, err := entities.ReleaseDate(window.To, rawDate)
	if err != nil {
		return "", err
	}

	logger.Infof(
		"Generating release notes from %s to %s (release date: %s)",
		entities.WindowStart(window), window.To, releaseDate,
	)

	logRange := window.LogRange()
	commits, err := repo.Log(ctx, logRange)
	if err != nil {
		return "", fmt.Errorf("failed to read commits %s: %w", logRange, err)
	}
	if len(commits) == 0 {
		return "", &entities.EmptyRangeError{Range: logRange}
	}
	logger.Debugf("Collected %d commits", len(commits))

	links := entities.NewLinks(opts.Environment)
	sections := entities.Categorize(commits, links)
	report := entities.NewReleaseReport(window, releaseDate, sections, links, opts.WithTitle)

	return report.String(), nil
}

// window resolves the tags of the report. An explicit pair must exist in the
// repository; a lone "to" is trusted as is.
func (it *GenerateCommand) window(
	ctx context.Context,
	repo repositories.GitRepository,
	requested *entities.TagRange,
) (entities.TagRange, error) {
	if requested != nil && requested.To != "" {
		if requested.IsSingle() {
			return *requested, nil
		}

		tags, err := repo.ListTags(ctx)
		if err != nil {
			return entities.TagRange{}, fmt.Errorf("failed to list tags: %w", err)
		}
		if !entities.TagsExist(tags, requested.From, requested.To) {
			return entities.TagRange{}, entities.ErrInvalidTagRange
		}
		return *requested, nil
	}

	if requested != nil && requested.From != "" {
		logger.Warnf("Ignoring starting tag %q because no ending tag was given", requested.From)
	}

	return resolveWindow(ctx, repo)
}

// resolveWindow picks the window from the tags of the repository.
func resolveWindow(ctx context.Context, repo repositories.GitRepository) (entities.TagRange, error) {
	tags, err := repo.ListTags(ctx)
	if err != nil {
		return entities.TagRange{}, fmt.Errorf("failed to list tags: %w", err)
	}

	window, err := entities.ResolveTags(tags)
	if err != nil {
		return entities.TagRange{}, err
	}

	if window.IsSingle() {
		logger.Warn("Only one valid tag found. Using all commits up to this tag.")
	}
	return window, nil
}
