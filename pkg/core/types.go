package core

import "fmt"

// ParsedCommand represents a slash command extracted from a comment
type ParsedCommand struct {
	Command string
	Args    []string
	// Body holds everything after the first line of the comment.
	// It is only meaningful when HasBody is true.
	Body    string
	HasBody bool
}

// IssueRef identifies an issue in a repository
type IssueRef struct {
	Owner  string
	Repo   string
	Number int
	URL    string
}

// String returns the short reference form owner/repo#number
func (r IssueRef) String() string {
	return fmt.Sprintf("%s/%s#%d", r.Owner, r.Repo, r.Number)
}

// ProjectConfig is the project configuration loaded from the repository
type ProjectConfig struct {
	ProjectURL   string              `yaml:"project_url"`
	Repositories map[string][]string `yaml:"repositories"`
}

// Config represents the GitHub Action configuration
type Config struct {
	GitHubToken string
	ConfigFile  string
	ConfigRef   string
}
