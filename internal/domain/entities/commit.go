package entities

import "strings"

const shortHashLength = 7

// Commit is one entry of the history between two tags.
type Commit struct {
	Hash        string
	Message     string // summary line
	Body        string
	AuthorName  string
	AuthorEmail string
}

// NewCommit splits a raw commit message into its summary line and body.
func NewCommit(hash, rawMessage, authorName, authorEmail string) Commit {
	summary, body, _ := strings.Cut(rawMessage, "\n")
	return Commit{
		Hash:        hash,
		Message:     strings.TrimSpace(summary),
		Body:        strings.TrimSpace(body),
		AuthorName:  authorName,
		AuthorEmail: authorEmail,
	}
}

// ShortHash returns the abbreviated hash shown in the report.
func (c Commit) ShortHash() string {
	if len(c.Hash) <= shortHashLength {
		return c.Hash
	}
	return c.Hash[:shortHashLength]
}
