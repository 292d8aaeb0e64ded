package entities

import (
	"errors"
	"fmt"
)

var (
	ErrNoValidTags     = errors.New("no valid tags found in the repository")
	ErrNoStableTags    = errors.New("no stable tags found in the repository")
	ErrInvalidTagRange = errors.New(
		"invalid tags provided or not enough valid tags to generate a release note",
	)
)

// EmptyRangeError is returned when a log range holds no commits.
type EmptyRangeError struct {
	Range LogRange
}

func (e *EmptyRangeError) Error() string {
	return fmt.Sprintf("no commits found between the specified tags %s", e.Range)
}

// TagDateError is returned when the date of a tag cannot be determined.
type TagDateError struct {
	Tag string
	Raw string
}

func (e *TagDateError) Error() string {
	return fmt.Sprintf("no valid date found for tag %s (got %q)", e.Tag, e.Raw)
}
