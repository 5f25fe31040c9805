package core

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tokenize parses a slash command from a comment.
//
// The first line holds the command and its arguments, everything after the
// first line break is returned verbatim as the body. Arguments are split on
// whitespace; a balanced double-quoted argument (`"a b"` or `tag="a b"`) is
// kept as a single argument with the quotes removed and `\"` unescaped.
//
// ok is false when the text does not start with a slash immediately followed
// by a non-whitespace character. Leading whitespace is not trimmed.
func Tokenize(text string) (cmd ParsedCommand, ok bool) {
	if !strings.HasPrefix(text, "/") {
		return ParsedCommand{}, false
	}

	line, body, hasBody := splitFirstLine(text[1:])

	r, _ := utf8.DecodeRuneInString(line)
	if line == "" || unicode.IsSpace(r) {
		return ParsedCommand{}, false
	}

	name, rest := line, ""
	if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
		name, rest = line[:i], line[i:]
	}

	return ParsedCommand{
		Command: name,
		Args:    splitArgs(rest),
		Body:    body,
		HasBody: hasBody,
	}, true
}

// splitFirstLine splits text at the first line break. A "\r\n" pair counts as
// a single break.
func splitFirstLine(text string) (line, rest string, found bool) {
	i := strings.IndexByte(text, '\n')
	if i < 0 {
		return text, "", false
	}

	line, rest = text[:i], text[i+1:]
	line = strings.TrimSuffix(line, "\r")

	return line, rest, true
}

// splitArgs splits a command line into arguments. A double quote starts a
// quoted section only at the beginning of an argument or right after `=`,
// and only when a closing quote follows on the line. Any other quote is kept
// as a literal character.
func splitArgs(line string) []string {
	args := []string{}

	var (
		current strings.Builder
		inToken bool
	)

	flush := func() {
		if inToken {
			args = append(args, current.String())
		}
		current.Reset()
		inToken = false
	}

	for i := 0; i < len(line); {
		r, size := utf8.DecodeRuneInString(line[i:])

		if unicode.IsSpace(r) {
			flush()
			i += size

			continue
		}

		if r == '"' && (!inToken || strings.HasSuffix(current.String(), "=")) {
			if end := closingQuote(line, i+1); end >= 0 {
				current.WriteString(strings.ReplaceAll(line[i+1:end], `\"`, `"`))
				inToken = true
				i = end + 1

				continue
			}
		}

		current.WriteString(line[i : i+size])
		inToken = true
		i += size
	}

	flush()

	return args
}

// closingQuote returns the index of the first unescaped double quote at or
// after start, or -1.
func closingQuote(line string, start int) int {
	for i := start; i < len(line); i++ {
		switch line[i] {
		case '\\':
			i++
		case '"':
			return i
		}
	}

	return -1
}
