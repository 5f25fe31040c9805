package action

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ksysoev/subtask-action/pkg/core"
	"github.com/sethvargo/go-githubactions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const outputDelimiter = "_GitHubActionsFileCommandDelimeter_"

// readOutputs parses a GITHUB_OUTPUT file written with name<<delimiter blocks
func readOutputs(t *testing.T, path string) map[string]string {
	t.Helper()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return map[string]string{}
	}
	require.NoError(t, err)

	outputs := make(map[string]string)
	lines := strings.Split(string(data), "\n")

	for i := 0; i < len(lines); i++ {
		name, found := strings.CutSuffix(lines[i], "<<"+outputDelimiter)
		if !found {
			continue
		}

		var value []string
		for i++; i < len(lines) && lines[i] != outputDelimiter; i++ {
			value = append(value, lines[i])
		}

		outputs[name] = strings.Join(value, "\n")
	}

	return outputs
}

func newOutputAction(t *testing.T) (*githubactions.Action, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "output")
	gha := githubactions.New(
		githubactions.WithWriter(io.Discard),
		githubactions.WithGetenv(func(key string) string {
			if key == "GITHUB_OUTPUT" {
				return path
			}
			return ""
		}),
	)

	return gha, path
}

func TestSetOutputs(t *testing.T) {
	subTask := core.IssueRef{Owner: "org", Repo: "server", Number: 12}

	tests := []struct {
		name   string
		result *Result
		want   map[string]string
	}{
		{
			name: "Created sub-task with body",
			result: &Result{
				Command: core.ParsedCommand{
					Command: "task",
					Args:    []string{"api", "Implement", "endpoint"},
					Body:    "line2\nline3",
					HasBody: true,
				},
				Handled: true,
				SubTask: &subTask,
			},
			want: map[string]string{
				"command":  "task",
				"args":     "api Implement endpoint",
				"body":     "line2\nline3",
				"sub_task": "org/server#12",
			},
		},
		{
			name: "Created sub-task without body",
			result: &Result{
				Command: core.ParsedCommand{Command: "task", Args: []string{"api"}},
				Handled: true,
				SubTask: &subTask,
			},
			want: map[string]string{
				"command":  "task",
				"args":     "api",
				"sub_task": "org/server#12",
			},
		},
		{
			name: "Unknown command",
			result: &Result{
				Command: core.ParsedCommand{Command: "verify", Args: []string{}},
			},
			want: map[string]string{
				"command": "verify",
				"args":    "",
			},
		},
		{
			name:   "Not a command",
			result: nil,
			want:   map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gha, path := newOutputAction(t)

			SetOutputs(gha, tt.result)

			assert.Equal(t, tt.want, readOutputs(t, path))
		})
	}
}
