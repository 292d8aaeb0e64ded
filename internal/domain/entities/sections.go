package entities

// Sections holds the report lines of every category, in commit order.
type Sections map[Category][]string

// Categorize classifies every commit, keeping the order in which they were given.
func Categorize(commits []Commit, links Links) Sections {
	sections := make(Sections, len(Categories))
	for _, category := range Categories {
		sections[category] = []string{}
	}

	for _, commit := range commits {
		classification := Classify(commit, links)
		sections[classification.Category] = append(sections[classification.Category], classification.Line)
		if classification.BreakingLine != "" {
			sections[CategoryBreakingChanges] = append(sections[CategoryBreakingChanges], classification.BreakingLine)
		}
	}

	return sections
}

// IsEmpty reports whether no category holds any line.
func (s Sections) IsEmpty() bool {
	for _, lines := range s {
		if len(lines) > 0 {
			return false
		}
	}
	return true
}
