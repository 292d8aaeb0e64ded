package entities

import (
	"fmt"
	"strings"
)

const (
	changelogHeading  = "🔗 Full Changelog"
	initialCommitName = "initial commit"
)

// ReleaseReport is the Markdown document produced for one release window.
type ReleaseReport struct {
	Window       TagRange
	ReleaseDate  string
	Sections     Sections
	ChangelogURL string
	WithTitle    bool
}

// NewReleaseReport assembles a report, deriving the changelog link from links.
func NewReleaseReport(
	window TagRange,
	releaseDate string,
	sections Sections,
	links Links,
	withTitle bool,
) ReleaseReport {
	return ReleaseReport{
		Window:       window,
		ReleaseDate:  releaseDate,
		Sections:     sections,
		ChangelogURL: links.ChangelogURL(window),
		WithTitle:    withTitle,
	}
}

// String renders the report as Markdown. Empty categories are skipped.
func (r ReleaseReport) String() string {
	var builder strings.Builder

	if r.WithTitle {
		fmt.Fprintf(&builder, "# Release %s (%s)\n\n", r.Window.To, r.ReleaseDate)
	}

	for _, category := range Categories {
		lines := r.Sections[category]
		if len(lines) == 0 {
			continue
		}
		fmt.Fprintf(&builder, "## %s\n%s\n\n", category, strings.Join(lines, "\n"))
	}

	fmt.Fprintf(&builder, "## %s\n", changelogHeading)
	fmt.Fprintf(&builder, "[%s...%s](%s)\n", WindowStart(r.Window), r.Window.To, r.ChangelogURL)

	return builder.String()
}

// WindowStart names the first end of a window for display.
func WindowStart(window TagRange) string {
	if window.IsSingle() {
		return initialCommitName
	}
	return window.From
}
