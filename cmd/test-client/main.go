package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/ksysoev/subtask-action/pkg/action"
	"github.com/ksysoev/subtask-action/pkg/core"
	"github.com/ksysoev/subtask-action/pkg/github"
	"github.com/sethvargo/go-githubactions"
)

// test-client runs a comment through the action locally. Without
// GITHUB_TOKEN and TEST_ISSUE_NUMBER nothing is sent to GitHub.
func main() {
	configPath := os.Getenv("SUBTASK_CONFIG_FILE")
	if configPath == "" {
		configPath = ".github/subtask.yml"
	}

	comment := os.Getenv("TEST_COMMENT")
	if comment == "" {
		comment = "/task api Test sub-task creation\nCreated by the subtask-action test client."
	}

	repoFullName := os.Getenv("GITHUB_REPOSITORY")
	if repoFullName == "" {
		repoFullName = "ksysoev/subtask-action" // Default for testing
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		fmt.Printf("Error reading config: %v\n", err)
		os.Exit(1)
	}

	projectConfig, err := core.ParseProjectConfig(data)
	if err != nil {
		fmt.Printf("Error parsing config: %v\n", err)
		os.Exit(1)
	}

	owner, repo, err := core.SplitRepository(repoFullName)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	req := action.Request{
		Owner:   owner,
		Repo:    repo,
		Author:  os.Getenv("TEST_AUTHOR"),
		Comment: comment,
	}

	if req.Author == "" {
		req.Author = owner
	}

	log := githubactions.New()
	ctx := context.Background()

	var tracker action.IssueTracker = &action.DryRunTracker{
		Log:              log,
		FirstIssueNumber: 1,
		Bodies:           map[string]string{req.Parent().String(): os.Getenv("TEST_ISSUE_BODY")},
	}

	token := os.Getenv("GITHUB_TOKEN")
	if number := os.Getenv("TEST_ISSUE_NUMBER"); token != "" && number != "" {
		req.IssueNumber, err = strconv.Atoi(number)
		if err != nil {
			fmt.Printf("Invalid TEST_ISSUE_NUMBER: %v\n", err)
			os.Exit(1)
		}

		client, err := github.NewClient(ctx, token, os.Getenv("GITHUB_API_URL"))
		if err != nil {
			fmt.Printf("Error creating client: %v\n", err)
			os.Exit(1)
		}

		tracker = client
	}

	result, err := action.NewRunner(tracker, projectConfig, log).Run(ctx, req)
	if err != nil {
		fmt.Printf("Error running command: %v\n", err)
		os.Exit(1)
	}

	switch {
	case result == nil:
		fmt.Println("Comment is not a command")
	case !result.Handled:
		fmt.Printf("Unknown command: %s\n", result.Command.Command)
	default:
		fmt.Printf("Created sub-task %s\n", result.SubTask)
		fmt.Printf("Updated issue body:\n%s", result.IssueBody)
	}
}
