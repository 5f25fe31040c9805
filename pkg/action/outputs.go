package action

import (
	"strings"

	"github.com/sethvargo/go-githubactions"
)

// SetOutputs publishes a run result as step outputs. command and args are
// always set, body only when the comment had one and sub_task only when an
// issue was created.
func SetOutputs(gha *githubactions.Action, result *Result) {
	if result == nil {
		return
	}

	gha.SetOutput("command", result.Command.Command)
	gha.SetOutput("args", strings.Join(result.Command.Args, " "))

	if result.Command.HasBody {
		gha.SetOutput("body", result.Command.Body)
	}

	if result.SubTask != nil {
		gha.SetOutput("sub_task", result.SubTask.String())
	}
}
