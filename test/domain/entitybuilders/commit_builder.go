//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/releasenotes/internal/domain/entities"
)

const (
	defaultHash        = "abc1234def5678"
	defaultMessage     = "feat: add feature"
	defaultAuthorName  = "John Doe"
	defaultAuthorEmail = "john@example.com"
)

// CommitBuilder helps create test commits with a fluent interface.
type CommitBuilder struct {
	*testkit.BaseBuilder
	hash        string
	message     string
	body        string
	authorName  string
	authorEmail string
}

// NewCommitBuilder creates a new commit builder with sensible defaults.
func NewCommitBuilder() *CommitBuilder {
	return &CommitBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		hash:        defaultHash,
		message:     defaultMessage,
		authorName:  defaultAuthorName,
		authorEmail: defaultAuthorEmail,
	}
}

// WithHash sets the commit hash.
func (b *CommitBuilder) WithHash(hash string) *CommitBuilder {
	b.hash = hash
	return b
}

// WithMessage sets the summary line.
func (b *CommitBuilder) WithMessage(message string) *CommitBuilder {
	b.message = message
	return b
}

// WithBody sets the commit body.
func (b *CommitBuilder) WithBody(body string) *CommitBuilder {
	b.body = body
	return b
}

// WithAuthor sets the author name and email.
func (b *CommitBuilder) WithAuthor(name, email string) *CommitBuilder {
	b.authorName = name
	b.authorEmail = email
	return b
}

// Build creates the commit (satisfies testkit.Builder interface).
func (b *CommitBuilder) Build() interface{} {
	return b.BuildCommit()
}

// BuildCommit creates the commit with a concrete return type.
func (b *CommitBuilder) BuildCommit() entities.Commit {
	return entities.Commit{
		Hash:        b.hash,
		Message:     b.message,
		Body:        b.body,
		AuthorName:  b.authorName,
		AuthorEmail: b.authorEmail,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *CommitBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.hash = defaultHash
	b.message = defaultMessage
	b.body = ""
	b.authorName = defaultAuthorName
	b.authorEmail = defaultAuthorEmail
	return b
}

// Clone creates a deep copy of the CommitBuilder.
func (b *CommitBuilder) Clone() testkit.Builder {
	return &CommitBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		hash:        b.hash,
		message:     b.message,
		body:        b.body,
		authorName:  b.authorName,
		authorEmail: b.authorEmail,
	}
}
