// Package action runs slash commands posted as issue comments.
package action

import (
	"context"
	"fmt"
	"strings"

	"github.com/ksysoev/subtask-action/pkg/core"
)

const (
	defaultSubTaskTitle = "Task"
	commandIndent       = " \t"
)

// IssueTracker is the subset of the GitHub API used to run commands
type IssueTracker interface {
	PermissionLevel(ctx context.Context, owner, repo, username string) (string, error)
	CreateIssue(ctx context.Context, owner, repo, title, body string) (core.IssueRef, error)
	IssueBody(ctx context.Context, owner, repo string, number int) (string, error)
	UpdateIssueBody(ctx context.Context, owner, repo string, number int, body string) error
}

// Logger receives progress messages. *githubactions.Action satisfies it.
type Logger interface {
	Debugf(msg string, args ...any)
	Infof(msg string, args ...any)
	Warningf(msg string, args ...any)
}

// Request is the comment that triggered the run
type Request struct {
	Owner         string
	Repo          string
	IssueNumber   int
	IsPullRequest bool
	Author        string
	Comment       string
}

// Parent returns a reference to the commented issue
func (r Request) Parent() core.IssueRef {
	return core.IssueRef{Owner: r.Owner, Repo: r.Repo, Number: r.IssueNumber}
}

// Result describes what a run did
type Result struct {
	Command core.ParsedCommand
	// Handled is false when the command name is unknown.
	Handled bool
	// SubTask is set when a sub-task issue was created.
	SubTask *core.IssueRef
	// IssueBody is the new body of the commented issue after an update.
	IssueBody string
}

// Runner executes commands against an issue tracker
type Runner struct {
	tracker IssueTracker
	config  core.ProjectConfig
	log     Logger
}

// NewRunner creates a Runner. config must have been validated.
func NewRunner(tracker IssueTracker, config core.ProjectConfig, log Logger) *Runner {
	return &Runner{
		tracker: tracker,
		config:  config,
		log:     log,
	}
}

// Run parses the comment of req and executes the command it contains.
// Only spaces and tabs before the slash are ignored, so the command must be
// on the first line of the comment.
// It returns a nil Result and no error when the comment is not a command.
// Every remote call is made once; the first failure stops the run.
func (r *Runner) Run(ctx context.Context, req Request) (*Result, error) {
	cmd, ok := core.Tokenize(strings.TrimLeft(req.Comment, commandIndent))
	if !ok {
		r.log.Debugf("Comment is not a slash command, skipping")
		return nil, nil
	}

	if req.IsPullRequest {
		r.log.Debugf("Command for pull request #%d", req.IssueNumber)
	} else {
		r.log.Debugf("Command for issue #%d", req.IssueNumber)
	}

	r.log.Debugf("Command name: %s", cmd.Command)
	r.log.Debugf("Command args: %s", strings.Join(cmd.Args, " "))

	if cmd.HasBody {
		r.log.Debugf("Command body: %s", cmd.Body)
	}

	result := &Result{Command: cmd}

	handler, ok := r.handler(cmd.Command)
	if !ok {
		r.log.Debugf("Unknown command: %s", cmd.Command)
		return result, nil
	}

	if err := r.checkAuthorPermission(ctx, req); err != nil {
		return nil, err
	}

	if err := handler(ctx, req, cmd, result); err != nil {
		return nil, err
	}

	result.Handled = true

	return result, nil
}

type commandHandler func(ctx context.Context, req Request, cmd core.ParsedCommand, result *Result) error

func (r *Runner) handler(name string) (commandHandler, bool) {
	switch name {
	case "task":
		return r.createTask, true
	default:
		return nil, false
	}
}

// checkAuthorPermission requires write or admin access to the commented repository
func (r *Runner) checkAuthorPermission(ctx context.Context, req Request) error {
	if req.Author == "" {
		return fmt.Errorf("%w: comment author is unknown", core.ErrPermissionDenied)
	}

	permission, err := r.tracker.PermissionLevel(ctx, req.Owner, req.Repo, req.Author)
	if err != nil {
		return fmt.Errorf("%w: permission check: %w", core.ErrRemoteOperationFailed, err)
	}

	r.log.Debugf("Permission of %s on %s/%s: %s", req.Author, req.Owner, req.Repo, permission)

	if permission != "write" && permission != "admin" {
		return fmt.Errorf("%w: %s has %s access to %s/%s", core.ErrPermissionDenied, req.Author, permission, req.Owner, req.Repo)
	}

	return nil
}
