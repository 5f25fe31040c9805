package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   ParsedCommand
		wantOK bool
	}{
		{
			name:   "Minimal command",
			input:  "/command",
			want:   ParsedCommand{Command: "command", Args: []string{}},
			wantOK: true,
		},
		{
			name:   "Command with arguments",
			input:  "/command arg1 arg2",
			want:   ParsedCommand{Command: "command", Args: []string{"arg1", "arg2"}},
			wantOK: true,
		},
		{
			name:  "Command with body",
			input: "/command arg1 arg2\nline2\nline3",
			want: ParsedCommand{
				Command: "command",
				Args:    []string{"arg1", "arg2"},
				Body:    "line2\nline3",
				HasBody: true,
			},
			wantOK: true,
		},
		{
			name:  "Trailing space before body",
			input: "/command arg1 arg2 \nComplex command lines can also include a body part.\ne.g.: a description can be passed directly",
			want: ParsedCommand{
				Command: "command",
				Args:    []string{"arg1", "arg2"},
				Body:    "Complex command lines can also include a body part.\ne.g.: a description can be passed directly",
				HasBody: true,
			},
			wantOK: true,
		},
		{
			name:  "Body keeps surrounding whitespace",
			input: "/task api\r\n  indented\n\n",
			want: ParsedCommand{
				Command: "task",
				Args:    []string{"api"},
				Body:    "  indented\n\n",
				HasBody: true,
			},
			wantOK: true,
		},
		{
			name:   "Empty body after line break",
			input:  "/task\n",
			want:   ParsedCommand{Command: "task", Args: []string{}, Body: "", HasBody: true},
			wantOK: true,
		},
		{
			name:   "Runs of whitespace",
			input:  "/task \t api   Write  docs ",
			want:   ParsedCommand{Command: "task", Args: []string{"api", "Write", "docs"}},
			wantOK: true,
		},
		{
			name:   "Quoted arguments",
			input:  `/task api "Implement endpoint" label="needs review"`,
			want:   ParsedCommand{Command: "task", Args: []string{"api", "Implement endpoint", "label=needs review"}},
			wantOK: true,
		},
		{
			name:   "Escaped quote inside quotes",
			input:  `/task "say \"hi\"" done`,
			want:   ParsedCommand{Command: "task", Args: []string{`say "hi"`, "done"}},
			wantOK: true,
		},
		{
			name:   "Unterminated quote is literal",
			input:  `/task api "foo bar`,
			want:   ParsedCommand{Command: "task", Args: []string{"api", `"foo`, "bar"}},
			wantOK: true,
		},
		{
			name:   "Quote inside argument is literal",
			input:  `/task api Support 27" monitors`,
			want:   ParsedCommand{Command: "task", Args: []string{"api", "Support", `27"`, "monitors"}},
			wantOK: true,
		},
		{
			name:   "Escaped quotes outside quotes are literal",
			input:  `/task api Say \"hi\" there`,
			want:   ParsedCommand{Command: "task", Args: []string{"api", "Say", `\"hi\"`, "there"}},
			wantOK: true,
		},
		{
			name:   "Quoted argument followed by unterminated quote",
			input:  `/task "a b" "c d`,
			want:   ParsedCommand{Command: "task", Args: []string{"a b", `"c`, "d"}},
			wantOK: true,
		},
		{
			name:   "Invalid UTF-8 is kept byte for byte",
			input:  "/task api bad\xffbyte",
			want:   ParsedCommand{Command: "task", Args: []string{"api", "bad\xffbyte"}},
			wantOK: true,
		},
		{
			name:   "Plain comment",
			input:  "just a simple comment",
			wantOK: false,
		},
		{
			name:   "Bare slash",
			input:  "/",
			wantOK: false,
		},
		{
			name:   "Slash followed by space",
			input:  "/ task api",
			wantOK: false,
		},
		{
			name:   "Slash followed by line break",
			input:  "/\ntask",
			wantOK: false,
		},
		{
			name:   "Leading whitespace",
			input:  "  /task api",
			wantOK: false,
		},
		{
			name:   "Empty string",
			input:  "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Tokenize(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTokenize_Deterministic(t *testing.T) {
	first, ok := Tokenize("/task api one two")
	assert.True(t, ok)

	second, ok := Tokenize("/task api one two")
	assert.True(t, ok)

	assert.Equal(t, first, second)
}
