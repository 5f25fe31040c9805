package action

import (
	"context"
	"fmt"
	"strings"

	"github.com/ksysoev/subtask-action/pkg/core"
)

// createTask handles `/task <tag> [title...]`. It creates an issue in the
// repository the tag maps to and lists it in the sub-task checklist of the
// commented issue.
func (r *Runner) createTask(ctx context.Context, req Request, cmd core.ParsedCommand, result *Result) error {
	if len(cmd.Args) == 0 {
		return fmt.Errorf("%w: at least one argument, for the repository name, must be provided", core.ErrMissingArgument)
	}

	tag := cmd.Args[0]

	repoName, ok := core.ResolveRepository(tag, r.config.Repositories)
	if !ok {
		return fmt.Errorf("%w: could not find sub-repository for %q", core.ErrUnknownRepositoryTag, tag)
	}

	r.log.Debugf("Resolved tag %s to repository %s", tag, repoName)

	owner, repo, err := core.SplitRepository(repoName)
	if err != nil {
		return err
	}

	title := defaultSubTaskTitle
	if len(cmd.Args) > 1 {
		title = strings.Join(cmd.Args[1:], " ")
	}

	body := core.SubTaskIssueBody(cmd.Body, req.Parent(), r.config.ProjectURL)

	subTask, err := r.tracker.CreateIssue(ctx, owner, repo, title, body)
	if err != nil {
		return fmt.Errorf("%w: could not create issue in sub-repository %s: %w", core.ErrRemoteOperationFailed, repoName, err)
	}

	r.log.Infof("Created sub-task %s: %s", subTask, title)
	result.SubTask = &subTask

	// The body in the event payload may be stale if another command updated
	// the issue in the meantime.
	current, err := r.tracker.IssueBody(ctx, req.Owner, req.Repo, req.IssueNumber)
	if err != nil {
		return fmt.Errorf("%w: failed to read issue %s: %w", core.ErrRemoteOperationFailed, req.Parent(), err)
	}

	updated := core.AppendChecklistItem(subTask.String(), current)
	if err := r.tracker.UpdateIssueBody(ctx, req.Owner, req.Repo, req.IssueNumber, updated); err != nil {
		return fmt.Errorf("%w: failed to update issue with sub-task %s: %w", core.ErrRemoteOperationFailed, subTask, err)
	}

	r.log.Infof("Added %s to the sub-tasks of %s", subTask, req.Parent())
	result.IssueBody = updated

	return nil
}
