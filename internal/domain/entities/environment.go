package entities

import "strings"

const defaultGitHubServerURL = "https://github.com"

// Environment is the read-only CI context of one invocation. Keys mirror the
// variable names GitHub Actions and GitLab CI export.
type Environment struct {
	GitHubRepository string `koanf:"github_repository"`
	GitHubServerURL  string `koanf:"github_server_url"`
	ProjectURL       string `koanf:"ci_project_url"`

	// legacy entry point of the tool, used as defaults for the CLI flags
	RepositoryPath string `koanf:"custom_repository_path"`
	OutputPath     string `koanf:"custom_output_path"`
	FromTag        string `koanf:"custom_from_tag"`
	ToTag          string `koanf:"custom_to_tag"`
}

// Links builds the commit, author, and changelog URLs of a report. The zero
// value renders "#"-anchored placeholders.
type Links struct {
	baseURL     string
	comparePath string
}

// NewLinks derives the link style from the CI context. GitHub wins over GitLab
// when both are present.
func NewLinks(env Environment) Links {
	if env.GitHubRepository != "" {
		server := env.GitHubServerURL
		if server == "" {
			server = defaultGitHubServerURL
		}
		return Links{
			baseURL:     strings.TrimSuffix(server, "/") + "/" + strings.Trim(env.GitHubRepository, "/"),
			comparePath: "/compare/",
		}
	}

	if env.ProjectURL != "" {
		return Links{
			baseURL:     strings.TrimSuffix(env.ProjectURL, "/"),
			comparePath: "/-/compare/",
		}
	}

	return Links{}
}

// BaseURL returns the project URL, or an empty string when none is configured.
func (l Links) BaseURL() string {
	return l.baseURL
}

func (l Links) CommitURL(hash string) string {
	if l.baseURL == "" {
		return "#" + hash
	}
	return l.baseURL + "/commit/" + hash
}

func (l Links) AuthorURL(email string) string {
	if l.baseURL == "" {
		return "#" + email
	}
	return l.baseURL + "/commits?author=" + email
}

// ChangelogURL points at the platform's compare view for the window.
func (l Links) ChangelogURL(window TagRange) string {
	if l.baseURL == "" {
		return "#"
	}
	return l.baseURL + l.comparePath + window.From + "..." + window.To
}
