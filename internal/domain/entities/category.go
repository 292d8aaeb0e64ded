package entities

// Category is a display heading of the release report.
type Category string

const (
	CategoryBreakingChanges Category = "💥 BREAKING CHANGES"
	CategoryFeatures        Category = "🚀 Features"
	CategoryBugFixes        Category = "🐛 Bug Fixes"
	CategoryRefactors       Category = "🔧 Refactors"
	CategoryPerformance     Category = "⚡ Performance"
	CategoryDocumentation   Category = "📚 Documentation"
	CategoryTests           Category = "🧪 Tests"
	CategoryBuild           Category = "🏗️ Build"
	CategoryCI              Category = "🔄 CI/CD"
	CategoryStyling         Category = "💄 Styling"
	CategoryChores          Category = "🛠️ Chores"
	CategoryReverts         Category = "🔙 Reverts"
	CategoryUnspecified     Category = "🔍 Unspecified Type"
)

// Categories lists every category in report order.
//
//nolint:gochecknoglobals // fixed lookup table
var Categories = []Category{
	CategoryBreakingChanges,
	CategoryFeatures,
	CategoryBugFixes,
	CategoryRefactors,
	CategoryPerformance,
	CategoryDocumentation,
	CategoryTests,
	CategoryBuild,
	CategoryCI,
	CategoryStyling,
	CategoryChores,
	CategoryReverts,
	CategoryUnspecified,
}

// commitTypes maps each accepted Conventional Commit type to its category.
//
//nolint:gochecknoglobals // fixed lookup table
var commitTypes = map[string]Category{
	"build":    CategoryBuild,
	"chore":    CategoryChores,
	"ci":       CategoryCI,
	"docs":     CategoryDocumentation,
	"feat":     CategoryFeatures,
	"fix":      CategoryBugFixes,
	"perf":     CategoryPerformance,
	"refactor": CategoryRefactors,
	"revert":   CategoryReverts,
	"style":    CategoryStyling,
	"test":     CategoryTests,
}

// CategoryForType returns the category of a commit type, falling back to
// CategoryUnspecified for anything outside the accepted set.
func CategoryForType(commitType string) Category {
	if category, ok := commitTypes[commitType]; ok {
		return category
	}
	return CategoryUnspecified
}
