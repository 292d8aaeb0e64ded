//go:build unit

package entities_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/releasenotes/internal/domain/entities"
	"github.com/rios0rios0/releasenotes/test/domain/entitybuilders"
)

// anchoredLine is the line a commit renders to when no platform is configured.
func anchoredLine(text string, commit entities.Commit) string {
	return fmt.Sprintf(
		"- %s ([`%s`](#%s)) [@%s](#%s)",
		text, commit.Hash[:7], commit.Hash, commit.AuthorName, commit.AuthorEmail,
	)
}

func TestParseConventionalCommit(t *testing.T) {
	t.Parallel()

	t.Run("should parse type scope marker and description", func(t *testing.T) {
		t.Parallel()

		// given
		message := "feat(api)!: drop v1 endpoints"

		// when
		parsed, ok := entities.ParseConventionalCommit(message)

		// then
		assert.True(t, ok)
		assert.Equal(t, entities.ConventionalCommit{
			Type:        "feat",
			Scope:       "api",
			Breaking:    true,
			Description: "drop v1 endpoints",
		}, parsed)
	})

	t.Run("should trim extra spaces after the colon", func(t *testing.T) {
		t.Parallel()

		// given
		message := "fix:    handle nil pointer  "

		// when
		parsed, ok := entities.ParseConventionalCommit(message)

		// then
		assert.True(t, ok)
		assert.Equal(t, "handle nil pointer", parsed.Description)
	})

	t.Run("should fall back to a placeholder description", func(t *testing.T) {
		t.Parallel()

		// given
		message := "chore(deps):"

		// when
		parsed, ok := entities.ParseConventionalCommit(message)

		// then
		assert.True(t, ok)
		assert.Equal(t, "deps", parsed.Scope)
		assert.Equal(t, "no description", parsed.Description)
	})

	t.Run("should not match unknown or mixed case types", func(t *testing.T) {
		t.Parallel()

		// given
		messages := []string{"FeAt: New feature", "FIX: Critical fix", "unknown: thing", "feature: x", "Merge branch 'main'"}

		// when / then
		for _, message := range messages {
			_, ok := entities.ParseConventionalCommit(message)
			assert.False(t, ok, message)
		}
	})
}

func TestClassify(t *testing.T) {
	t.Parallel()

	t.Run("should categorize feature commits with and without scope", func(t *testing.T) {
		t.Parallel()

		// given
		plain := entitybuilders.NewCommitBuilder().WithMessage("feat: Add dark mode").BuildCommit()
		scoped := entitybuilders.NewCommitBuilder().WithMessage("feat(ui): Improve navbar design").BuildCommit()

		// when
		plainResult := entities.Classify(plain, entities.Links{})
		scopedResult := entities.Classify(scoped, entities.Links{})

		// then
		assert.Equal(t, entities.CategoryFeatures, plainResult.Category)
		assert.Equal(t, anchoredLine("Add dark mode", plain), plainResult.Line)
		assert.Empty(t, plainResult.BreakingLine)
		assert.Equal(t, entities.CategoryFeatures, scopedResult.Category)
		assert.Equal(t, anchoredLine("**ui** Improve navbar design", scoped), scopedResult.Line)
	})

	t.Run("should map every conventional type to its category", func(t *testing.T) {
		t.Parallel()

		// given
		expected := map[string]entities.Category{
			"feat":     entities.CategoryFeatures,
			"fix":      entities.CategoryBugFixes,
			"refactor": entities.CategoryRefactors,
			"perf":     entities.CategoryPerformance,
			"docs":     entities.CategoryDocumentation,
			"test":     entities.CategoryTests,
			"build":    entities.CategoryBuild,
			"ci":       entities.CategoryCI,
			"style":    entities.CategoryStyling,
			"chore":    entities.CategoryChores,
			"revert":   entities.CategoryReverts,
		}

		for commitType, category := range expected {
			commit := entitybuilders.NewCommitBuilder().WithMessage(commitType + ": something").BuildCommit()

			// when
			result := entities.Classify(commit, entities.Links{})

			// then
			assert.Equal(t, category, result.Category, commitType)
		}
	})

	t.Run("should keep unconventional messages verbatim under Unspecified", func(t *testing.T) {
		t.Parallel()

		// given
		commit := entitybuilders.NewCommitBuilder().WithMessage("FeAt: New feature").BuildCommit()

		// when
		result := entities.Classify(commit, entities.Links{})

		// then
		assert.Equal(t, entities.CategoryUnspecified, result.Category)
		assert.Equal(t, anchoredLine("FeAt: New feature", commit), result.Line)
	})

	t.Run("should use the body footer as the breaking change line", func(t *testing.T) {
		t.Parallel()

		// given
		commit := entitybuilders.NewCommitBuilder().
			WithMessage("feat(core): Introduce new API").
			WithBody(`
      This commit introduces a new API for the core module.

      It also includes a BREAKING CHANGE in the footer.

      BREAKING CHANGE: This removes v1 API endpoints.
      `).
			BuildCommit()

		// when
		result := entities.Classify(commit, entities.Links{})

		// then
		assert.Equal(t, entities.CategoryFeatures, result.Category)
		assert.Equal(t, anchoredLine("**core** Introduce new API", commit), result.Line)
		assert.Equal(t, anchoredLine("This removes v1 API endpoints.", commit), result.BreakingLine)
	})

	t.Run("should prefer the body footer over the bang marker", func(t *testing.T) {
		t.Parallel()

		// given
		commit := entitybuilders.NewCommitBuilder().
			WithMessage("feat!: Introduce new API").
			WithBody("BREAKING CHANGE: This removes v1 API endpoints.").
			BuildCommit()

		// when
		result := entities.Classify(commit, entities.Links{})

		// then
		assert.Equal(t, anchoredLine("Introduce new API", commit), result.Line)
		assert.Equal(t, anchoredLine("This removes v1 API endpoints.", commit), result.BreakingLine)
	})

	t.Run("should repeat the summary line for a bang marker without footer", func(t *testing.T) {
		t.Parallel()

		// given
		commit := entitybuilders.NewCommitBuilder().WithMessage("feat(core)!: Introduce new API").BuildCommit()

		// when
		result := entities.Classify(commit, entities.Links{})

		// then
		assert.Equal(t, anchoredLine("**core** Introduce new API", commit), result.Line)
		assert.Equal(t, result.Line, result.BreakingLine)
	})

	t.Run("should use a placeholder for an empty breaking change footer", func(t *testing.T) {
		t.Parallel()

		// given
		commit := entitybuilders.NewCommitBuilder().
			WithMessage("fix: patch").
			WithBody("BREAKING CHANGE:").
			BuildCommit()

		// when
		result := entities.Classify(commit, entities.Links{})

		// then
		assert.Equal(t, anchoredLine("No details provided", commit), result.BreakingLine)
	})

	t.Run("should stop the breaking change text at a second marker", func(t *testing.T) {
		t.Parallel()

		// given
		commit := entitybuilders.NewCommitBuilder().
			WithMessage("refactor: rework storage").
			WithBody("BREAKING CHANGE: first\nBREAKING CHANGE: second").
			BuildCommit()

		// when
		result := entities.Classify(commit, entities.Links{})

		// then
		assert.Equal(t, anchoredLine("first", commit), result.BreakingLine)
	})

	t.Run("should flag an unconventional commit with a breaking footer", func(t *testing.T) {
		t.Parallel()

		// given
		commit := entitybuilders.NewCommitBuilder().
			WithMessage("Rewrite everything").
			WithBody("BREAKING CHANGE: nothing works the same").
			BuildCommit()

		// when
		result := entities.Classify(commit, entities.Links{})

		// then
		assert.Equal(t, entities.CategoryUnspecified, result.Category)
		assert.Equal(t, anchoredLine("nothing works the same", commit), result.BreakingLine)
	})

	t.Run("should link to GitHub when a repository is configured", func(t *testing.T) {
		t.Parallel()

		// given
		commit := entitybuilders.NewCommitBuilder().
			WithHash("0123456789abcdef").
			WithMessage("fix: Resolve memory leak").
			WithAuthor("Charlie", "charlie@test.com").
			BuildCommit()
		links := entities.NewLinks(entities.Environment{GitHubRepository: "acme/widgets"})

		// when
		result := entities.Classify(commit, links)

		// then
		assert.Equal(t,
			"- Resolve memory leak ([`0123456`](https://github.com/acme/widgets/commit/0123456789abcdef)) "+
				"[@Charlie](https://github.com/acme/widgets/commits?author=charlie@test.com)",
			result.Line,
		)
	})

	t.Run("should return identical results when classifying twice", func(t *testing.T) {
		t.Parallel()

		// given
		commit := entitybuilders.NewCommitBuilder().
			WithMessage("perf(db)!: batch writes").
			WithBody("BREAKING CHANGE: new schema").
			BuildCommit()

		// when
		first := entities.Classify(commit, entities.Links{})
		second := entities.Classify(commit, entities.Links{})

		// then
		assert.Equal(t, first, second)
	})
}
