package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProjectConfig(t *testing.T) {
	data := []byte(`project_url: https://github.com/orgs/org/projects/1
repositories:
  org/server:
    - server
    - api
  org/client:
    - client
    - web-app
`)

	cfg, err := ParseProjectConfig(data)
	require.NoError(t, err)

	assert.Equal(t, "https://github.com/orgs/org/projects/1", cfg.ProjectURL)
	assert.Equal(t, map[string][]string{
		"org/server": {"server", "api"},
		"org/client": {"client", "web-app"},
	}, cfg.Repositories)
}

func TestParseProjectConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{
			name:    "Malformed YAML",
			data:    "repositories: [",
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "Not a mapping",
			data:    "- just\n- a list\n",
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "No repositories",
			data:    "project_url: https://example.com\n",
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "Invalid repository name",
			data:    "repositories:\n  server:\n    - api\n",
			wantErr: ErrInvalidRepository,
		},
		{
			name:    "Empty tag",
			data:    "repositories:\n  org/server:\n    - \"\"\n",
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "Duplicate tag",
			data:    "repositories:\n  org/server:\n    - api\n  org/client:\n    - api\n",
			wantErr: ErrDuplicateTag,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseProjectConfig([]byte(tt.data))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestProjectConfigValidate_SameTagTwiceInOneRepository(t *testing.T) {
	cfg := ProjectConfig{Repositories: map[string][]string{"org/server": {"api", "api"}}}
	assert.NoError(t, cfg.Validate())
}
