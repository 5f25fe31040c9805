package action

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/go-github/v60/github"
	"github.com/ksysoev/subtask-action/pkg/core"
	"github.com/sethvargo/go-githubactions"
)

const (
	commentEventName     = "issue_comment"
	commentCreatedAction = "created"
)

// LoadRequest reads the event payload of the current workflow run
func LoadRequest(ghctx *githubactions.GitHubContext) (Request, error) {
	if ghctx.EventName != commentEventName {
		return Request{}, fmt.Errorf("%w: %s", core.ErrUnsupportedEvent, ghctx.EventName)
	}

	if ghctx.EventPath == "" {
		return Request{}, fmt.Errorf("GITHUB_EVENT_PATH environment variable is not set")
	}

	payload, err := os.ReadFile(ghctx.EventPath)
	if err != nil {
		return Request{}, fmt.Errorf("failed to read event payload: %w", err)
	}

	req, err := RequestFromEvent(ghctx.EventName, payload)
	if err != nil {
		return Request{}, err
	}

	if req.Owner == "" || req.Repo == "" {
		req.Owner, req.Repo = ghctx.Repo()
	}

	return req, nil
}

// RequestFromEvent builds a Request from an issue_comment webhook payload.
// Only newly created comments are accepted.
func RequestFromEvent(eventName string, payload []byte) (Request, error) {
	if eventName != commentEventName {
		return Request{}, fmt.Errorf("%w: %s", core.ErrUnsupportedEvent, eventName)
	}

	var event github.IssueCommentEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return Request{}, fmt.Errorf("failed to decode %s payload: %w", eventName, err)
	}

	if event.GetAction() != commentCreatedAction {
		return Request{}, fmt.Errorf("%w: %s action %q", core.ErrUnsupportedEvent, eventName, event.GetAction())
	}

	if event.Issue == nil || event.Comment == nil {
		return Request{}, fmt.Errorf("%w: payload has no issue or comment", core.ErrUnsupportedEvent)
	}

	return Request{
		Owner:         event.GetRepo().GetOwner().GetLogin(),
		Repo:          event.GetRepo().GetName(),
		IssueNumber:   event.GetIssue().GetNumber(),
		IsPullRequest: event.GetIssue().IsPullRequest(),
		Author:        event.GetComment().GetUser().GetLogin(),
		Comment:       event.GetComment().GetBody(),
	}, nil
}
