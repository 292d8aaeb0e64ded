package gogit

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/rios0rios0/releasenotes/internal/domain/entities"
	"github.com/rios0rios0/releasenotes/internal/domain/repositories"
)

// tagDateLayout matches the "%ci" format of git.
const tagDateLayout = "2006-01-02 15:04:05 -0700"

// GoGitRepository implements repositories.GitRepository on top of go-git, so
// no git binary is needed on the runner.
type GoGitRepository struct {
	repo *git.Repository
}

// NewGoGitRepository opens the repository containing path.
func NewGoGitRepository(path string) (repositories.GitRepository, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open git repository: %w", err)
	}
	return &GoGitRepository{repo: repo}, nil
}

// ListTags returns the short name of every tag.
func (it *GoGitRepository) ListTags(ctx context.Context) ([]string, error) {
	refs, err := it.repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("failed to get tags: %w", err)
	}
	defer refs.Close()

	var tags []string
	err = refs.ForEach(func(ref *plumbing.Reference) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		tags = append(tags, ref.Name().Short())
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate tags: %w", err)
	}

	return tags, nil
}

// Log returns the commits reachable from To but not from From, newest first.
func (it *GoGitRepository) Log(ctx context.Context, logRange entities.LogRange) ([]entities.Commit, error) {
	to, err := it.resolveCommit(logRange.To)
	if err != nil {
		return nil, err
	}

	excluded := make(map[plumbing.Hash]struct{})
	if logRange.From != "" {
		from, fromErr := it.resolveCommit(logRange.From)
		if fromErr != nil {
			return nil, fromErr
		}

		walkErr := it.walk(ctx, from.Hash, func(c *object.Commit) error {
			excluded[c.Hash] = struct{}{}
			return nil
		})
		if walkErr != nil {
			return nil, fmt.Errorf("failed to walk history of %s: %w", logRange.From, walkErr)
		}
	}

	commits := make([]entities.Commit, 0)
	err = it.walk(ctx, to.Hash, func(c *object.Commit) error {
		if _, skip := excluded[c.Hash]; skip {
			return nil
		}
		commits = append(commits, entities.NewCommit(
			c.Hash.String(), c.Message, c.Author.Name, c.Author.Email,
		))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk history of %s: %w", logRange.To, err)
	}

	return commits, nil
}

// ShowTagDate returns the committer date of the commit a tag points to.
func (it *GoGitRepository) ShowTagDate(_ context.Context, tag string) (string, error) {
	commit, err := it.resolveCommit(tag)
	if err != nil {
		return "", err
	}
	return commit.Committer.When.Format(tagDateLayout), nil
}

// resolveCommit peels a tag (lightweight or annotated) down to its commit.
// Names that are not tags are resolved as any other revision.
func (it *GoGitRepository) resolveCommit(name string) (*object.Commit, error) {
	ref, err := it.repo.Tag(name)
	if err != nil {
		if !errors.Is(err, git.ErrTagNotFound) {
			return nil, fmt.Errorf("failed to read tag %q: %w", name, err)
		}

		hash, revErr := it.repo.ResolveRevision(plumbing.Revision(name))
		if revErr != nil {
			return nil, fmt.Errorf("could not resolve reference %q: %w", name, revErr)
		}
		return it.repo.CommitObject(*hash)
	}

	tagObject, err := it.repo.TagObject(ref.Hash())
	switch {
	case err == nil:
		commit, commitErr := tagObject.Commit()
		if commitErr != nil {
			return nil, fmt.Errorf("tag %q does not point to a commit: %w", name, commitErr)
		}
		return commit, nil
	case errors.Is(err, plumbing.ErrObjectNotFound):
		return it.repo.CommitObject(ref.Hash())
	default:
		return nil, fmt.Errorf("failed to read tag object %q: %w", name, err)
	}
}

// walk visits the history of a commit in committer-time order.
func (it *GoGitRepository) walk(
	ctx context.Context,
	from plumbing.Hash,
	visit func(c *object.Commit) error,
) error {
	iter, err := it.repo.Log(&git.LogOptions{From: from, Order: git.LogOrderCommitterTime})
	if err != nil {
		return fmt.Errorf("failed to get log: %w", err)
	}
	defer iter.Close()

	return iter.ForEach(func(c *object.Commit) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return visit(c)
	})
}
