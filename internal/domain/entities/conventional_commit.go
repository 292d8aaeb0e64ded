package entities

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	defaultDescription     = "no description"
	defaultBreakingDetails = "No details provided"
	breakingChangeMarker   = "BREAKING CHANGE:"
)

// conventionalCommitPattern matches "type(scope)!: description". Types are
// case-sensitive: "FIX: x" is not a conventional commit.
var conventionalCommitPattern = regexp.MustCompile(
	`^(build|chore|ci|docs|feat|fix|perf|refactor|revert|style|test)(?:\(([^)]+)\))?(!)?:\s?(.*)$`,
)

// ConventionalCommit is the parsed summary line of a commit.
type ConventionalCommit struct {
	Type        string
	Scope       string
	Breaking    bool
	Description string
}

// ParseConventionalCommit parses a summary line. The boolean is false when the
// line does not follow the convention.
func ParseConventionalCommit(message string) (ConventionalCommit, bool) {
	match := conventionalCommitPattern.FindStringSubmatch(message)
	if match == nil {
		return ConventionalCommit{}, false
	}

	description := strings.TrimSpace(match[4])
	if description == "" {
		description = defaultDescription
	}

	return ConventionalCommit{
		Type:        match[1],
		Scope:       match[2],
		Breaking:    match[3] != "",
		Description: description,
	}, true
}

// Classification is where a single commit lands in the report.
type Classification struct {
	Category     Category
	Line         string
	BreakingLine string // empty when the commit is not a breaking change
}

// Classify assigns a commit to exactly one non-breaking category and, when it
// is a breaking change, produces the extra line for the breaking bucket. A
// "BREAKING CHANGE:" footer in the body takes precedence over the "!" marker.
func Classify(commit Commit, links Links) Classification {
	var result Classification

	if parsed, ok := ParseConventionalCommit(commit.Message); ok {
		text := parsed.Description
		if parsed.Scope != "" {
			text = "**" + parsed.Scope + "** " + text
		}
		result.Category = CategoryForType(parsed.Type)
		result.Line = formatLine(text, commit, links)
		if parsed.Breaking {
			result.BreakingLine = result.Line
		}
	} else {
		result.Category = CategoryUnspecified
		result.Line = formatLine(strings.TrimSpace(commit.Message), commit, links)
	}

	if details, ok := breakingChangeDetails(commit.Body); ok {
		result.BreakingLine = formatLine(details, commit, links)
	}

	return result
}

// breakingChangeDetails returns the text following the first marker in the
// body, up to a second marker if there is one.
func breakingChangeDetails(body string) (string, bool) {
	_, after, found := strings.Cut(body, breakingChangeMarker)
	if !found {
		return "", false
	}

	details, _, _ := strings.Cut(after, breakingChangeMarker)
	details = strings.TrimSpace(details)
	if details == "" {
		details = defaultBreakingDetails
	}
	return details, true
}

func formatLine(text string, commit Commit, links Links) string {
	return fmt.Sprintf(
		"- %s ([`%s`](%s)) [@%s](%s)",
		text,
		commit.ShortHash(),
		links.CommitURL(commit.Hash),
		commit.AuthorName,
		links.AuthorURL(commit.AuthorEmail),
	)
}
