package github

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/go-github/v60/github"
	"github.com/ksysoev/subtask-action/pkg/core"
	"golang.org/x/oauth2"
)

const defaultAPIURL = "https://api.github.com"

// Client handles interaction with the GitHub API
type Client struct {
	client *github.Client
}

// NewClient creates a new GitHub client. apiURL selects a GitHub Enterprise
// Server instance; it may be empty for github.com.
func NewClient(ctx context.Context, token, apiURL string) (*Client, error) {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)

	return newClient(tc, apiURL)
}

func newClient(httpClient *http.Client, apiURL string) (*Client, error) {
	client := github.NewClient(httpClient)

	apiURL = strings.TrimSuffix(apiURL, "/")
	if apiURL != "" && apiURL != defaultAPIURL {
		var err error

		client, err = client.WithEnterpriseURLs(apiURL, apiURL)
		if err != nil {
			return nil, fmt.Errorf("invalid API URL %s: %w", apiURL, err)
		}
	}

	return &Client{client: client}, nil
}

// PermissionLevel returns the permission of a user on a repository:
// admin, write, read or none
func (c *Client) PermissionLevel(ctx context.Context, owner, repo, username string) (string, error) {
	perm, _, err := c.client.Repositories.GetPermissionLevel(ctx, owner, repo, username)
	if err != nil {
		return "", fmt.Errorf("failed to get permission level of %s on %s/%s: %w", username, owner, repo, err)
	}

	return perm.GetPermission(), nil
}

// CreateIssue creates an issue and returns a reference to it
func (c *Client) CreateIssue(ctx context.Context, owner, repo, title, body string) (core.IssueRef, error) {
	issue, _, err := c.client.Issues.Create(ctx, owner, repo, &github.IssueRequest{
		Title: &title,
		Body:  &body,
	})
	if err != nil {
		return core.IssueRef{}, fmt.Errorf("failed to create issue in %s/%s: %w", owner, repo, err)
	}

	return core.IssueRef{
		Owner:  owner,
		Repo:   repo,
		Number: issue.GetNumber(),
		URL:    issue.GetHTMLURL(),
	}, nil
}

// IssueBody returns the current body of an issue or pull request
func (c *Client) IssueBody(ctx context.Context, owner, repo string, number int) (string, error) {
	issue, _, err := c.client.Issues.Get(ctx, owner, repo, number)
	if err != nil {
		return "", fmt.Errorf("failed to get issue %s/%s#%d: %w", owner, repo, number, err)
	}

	return issue.GetBody(), nil
}

// UpdateIssueBody replaces the body of an issue or pull request
func (c *Client) UpdateIssueBody(ctx context.Context, owner, repo string, number int, body string) error {
	_, _, err := c.client.Issues.Edit(ctx, owner, repo, number, &github.IssueRequest{
		Body: &body,
	})
	if err != nil {
		return fmt.Errorf("failed to update issue %s/%s#%d: %w", owner, repo, number, err)
	}

	return nil
}

// FetchFile returns the decoded content of a file in a repository. An empty
// ref reads from the default branch.
func (c *Client) FetchFile(ctx context.Context, owner, repo, path, ref string) ([]byte, error) {
	var opts *github.RepositoryContentGetOptions
	if ref != "" {
		opts = &github.RepositoryContentGetOptions{Ref: ref}
	}

	fileContent, _, _, err := c.client.Repositories.GetContents(ctx, owner, repo, path, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to get content of %s: %w", path, err)
	}

	if fileContent == nil {
		return nil, fmt.Errorf("%w: path %s does not refer to a file", core.ErrInvalidConfig, path)
	}

	content, err := fileContent.GetContent()
	if err != nil {
		return nil, fmt.Errorf("failed to decode content of %s: %w", path, err)
	}

	return []byte(content), nil
}
