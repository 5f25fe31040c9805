package main

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/ksysoev/subtask-action/pkg/action"
	"github.com/ksysoev/subtask-action/pkg/core"
	"github.com/ksysoev/subtask-action/pkg/github"
	"github.com/sethvargo/go-githubactions"
)

const defaultConfigFile = ".github/subtask.yml"

func main() {
	// Set up action
	gha := githubactions.New()
	ctx := context.Background()

	// Get action inputs - first try action inputs, then fall back to env vars
	config := core.Config{
		GitHubToken: inputOrEnv(gha, "github_token", "SUBTASK_GITHUB_TOKEN"),
		ConfigFile:  inputOrEnv(gha, "config_file", "SUBTASK_CONFIG_FILE"),
		ConfigRef:   inputOrEnv(gha, "config_ref", "SUBTASK_CONFIG_REF"),
	}

	if config.GitHubToken == "" {
		gha.Fatalf("github_token input is required")
	}

	if config.ConfigFile == "" {
		config.ConfigFile = defaultConfigFile
	}

	// Get GitHub context
	ghctx, err := gha.Context()
	if err != nil {
		gha.Fatalf("Failed to read GitHub context: %v", err)
	}

	req, err := action.LoadRequest(ghctx)
	if errors.Is(err, core.ErrUnsupportedEvent) {
		gha.Warningf("This action only runs on created issue comments: %v", err)
		return
	}

	if err != nil {
		gha.Fatalf("Failed to load event: %v", err)
	}

	if _, ok := core.Tokenize(strings.TrimLeft(req.Comment, " \t")); !ok {
		gha.Debugf("The first line of the comment is not a slash command, skipping")
		return
	}

	// Initialize GitHub client
	client, err := github.NewClient(ctx, config.GitHubToken, ghctx.APIURL)
	if err != nil {
		gha.Fatalf("Failed to create GitHub client: %v", err)
	}

	projectConfig, err := loadProjectConfig(ctx, client, req, config)
	if err != nil {
		gha.Fatalf("Failed to load config %s: %v", config.ConfigFile, err)
	}

	gha.Debugf("Loaded config from %s with %d repositories", config.ConfigFile, len(projectConfig.Repositories))

	result, err := action.NewRunner(client, projectConfig, gha).Run(ctx, req)
	if err != nil {
		gha.Fatalf("%v", err)
	}

	if result == nil {
		return
	}

	action.SetOutputs(gha, result)

	if !result.Handled {
		gha.Infof("Unknown command /%s, nothing to do", result.Command.Command)
		return
	}

	gha.Infof("Subtask action completed successfully")
}

func inputOrEnv(gha *githubactions.Action, input, env string) string {
	if v := gha.GetInput(input); v != "" {
		return v
	}

	return os.Getenv(env)
}

// loadProjectConfig fetches the project config from the repository the comment was posted in
func loadProjectConfig(ctx context.Context, client *github.Client, req action.Request, config core.Config) (core.ProjectConfig, error) {
	data, err := client.FetchFile(ctx, req.Owner, req.Repo, config.ConfigFile, config.ConfigRef)
	if err != nil {
		return core.ProjectConfig{}, err
	}

	return core.ParseProjectConfig(data)
}
