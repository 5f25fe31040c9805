package action

import (
	"context"

	"github.com/ksysoev/subtask-action/pkg/core"
)

// DryRunTracker is an IssueTracker that only logs the calls it receives.
// Every user is reported as admin, created issues are numbered from
// FirstIssueNumber and issue bodies are kept in Bodies, keyed by
// owner/repo#number.
type DryRunTracker struct {
	Log              Logger
	FirstIssueNumber int
	Bodies           map[string]string

	created int
}

// PermissionLevel reports admin access for any user
func (d *DryRunTracker) PermissionLevel(_ context.Context, owner, repo, username string) (string, error) {
	d.Log.Infof("[dry-run] permission of %s on %s/%s: admin", username, owner, repo)
	return "admin", nil
}

// CreateIssue logs the issue and returns the next issue number
func (d *DryRunTracker) CreateIssue(_ context.Context, owner, repo, title, body string) (core.IssueRef, error) {
	ref := core.IssueRef{Owner: owner, Repo: repo, Number: d.FirstIssueNumber + d.created}
	d.created++

	d.Log.Infof("[dry-run] create issue %s: %s\n%s", ref, title, body)

	return ref, nil
}

// IssueBody returns the body stored in Bodies, empty if there is none
func (d *DryRunTracker) IssueBody(_ context.Context, owner, repo string, number int) (string, error) {
	ref := core.IssueRef{Owner: owner, Repo: repo, Number: number}
	return d.Bodies[ref.String()], nil
}

// UpdateIssueBody logs the new body and stores it in Bodies
func (d *DryRunTracker) UpdateIssueBody(_ context.Context, owner, repo string, number int, body string) error {
	ref := core.IssueRef{Owner: owner, Repo: repo, Number: number}
	d.Log.Infof("[dry-run] update %s:\n%s", ref, body)

	if d.Bodies == nil {
		d.Bodies = make(map[string]string)
	}

	d.Bodies[ref.String()] = body

	return nil
}
