package entities

import (
	"fmt"
	"slices"
	"sort"
	"strings"
	"time"

	"golang.org/x/mod/semver"
)

const releaseDateLayout = "2006-01-02"

// TagRange is the window of history a release report covers. An empty From
// means "everything up to To".
type TagRange struct {
	From string
	To   string
}

// IsSingle reports whether the window starts at the initial commit.
func (r TagRange) IsSingle() bool {
	return r.From == ""
}

// LogRange builds the commit range query for this window.
func (r TagRange) LogRange() LogRange {
	return LogRange(r)
}

// LogRange is the commit range handed to the git repository.
type LogRange struct {
	From string
	To   string
}

func (r LogRange) String() string {
	if r.From == "" {
		return fmt.Sprintf("{to: %q}", r.To)
	}
	return fmt.Sprintf("{from: %q, to: %q}", r.From, r.To)
}

// IsValidTag reports whether a tag is a full MAJOR.MINOR.PATCH semantic
// version, with or without the "v" prefix.
func IsValidTag(tag string) bool {
	version := normalizeVersion(tag)
	if !semver.IsValid(version) {
		return false
	}
	// x/mod accepts "v1" and "v1.2" shorthands, which are not tags we release
	return strings.HasPrefix(version, semver.Canonical(version))
}

// IsPreRelease reports whether a tag carries a pre-release suffix such as "-rc.1".
func IsPreRelease(tag string) bool {
	return semver.Prerelease(normalizeVersion(tag)) != ""
}

// SortTags returns the valid semantic-version tags in ascending precedence.
// Invalid tags are dropped.
func SortTags(tags []string) []string {
	valid := make([]string, 0, len(tags))
	for _, tag := range tags {
		if IsValidTag(tag) {
			valid = append(valid, tag)
		}
	}

	sort.SliceStable(valid, func(i, j int) bool {
		return semver.Compare(normalizeVersion(valid[i]), normalizeVersion(valid[j])) < 0
	})
	return valid
}

// ResolveTags picks the release window from every tag of a repository:
//   - a single valid tag covers all history up to it;
//   - a pre-release as the highest tag is compared with the tag right before it;
//   - otherwise the two highest stable tags are used.
func ResolveTags(allTags []string) (TagRange, error) {
	tags := SortTags(allTags)
	if len(tags) == 0 {
		return TagRange{}, ErrNoValidTags
	}

	if len(tags) == 1 {
		return TagRange{To: tags[0]}, nil
	}

	last := tags[len(tags)-1]
	if IsPreRelease(last) {
		return TagRange{From: tags[len(tags)-2], To: last}, nil
	}

	stable := make([]string, 0, len(tags))
	for _, tag := range tags {
		if !IsPreRelease(tag) {
			stable = append(stable, tag)
		}
	}

	if len(stable) == 0 {
		return TagRange{}, ErrNoStableTags
	}

	resolved := TagRange{To: stable[len(stable)-1]}
	if len(stable) > 1 {
		resolved.From = stable[len(stable)-2]
	}
	return resolved, nil
}

// TagsExist reports whether both tags are present in the repository, as
// given. No semantic-version check is applied.
func TagsExist(allTags []string, from, to string) bool {
	return slices.Contains(allTags, from) && slices.Contains(allTags, to)
}

// ReleaseDate extracts the YYYY-MM-DD part of a "YYYY-MM-DD HH:MM:SS ±ZZZZ"
// tag date.
func ReleaseDate(tag, raw string) (string, error) {
	date, _, found := strings.Cut(strings.TrimSpace(raw), " ")
	if !found || date == "" {
		return "", &TagDateError{Tag: tag, Raw: raw}
	}

	if _, err := time.Parse(releaseDateLayout, date); err != nil {
		return "", &TagDateError{Tag: tag, Raw: raw}
	}
	return date, nil
}

// normalizeVersion ensures version has 'v' prefix for semver compatibility
func normalizeVersion(version string) string {
	version = strings.TrimSpace(version)
	if strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}
