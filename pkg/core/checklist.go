package core

import (
	"fmt"
	"regexp"
	"strings"
)

// ChecklistHeader marks the section of an issue body that lists sub-tasks
const ChecklistHeader = "### Sub-Tasks"

var checklistItemRegex = regexp.MustCompile(`^- \[[ xX]\] `)

// AppendChecklistItem returns body with a pending checklist item for item
// appended to the sub-task section. The section is created at the end of the
// body when it does not exist yet. Existing items are never modified and the
// item is always added, even if an identical one is already listed.
//
// item must be a single line; it is inserted verbatim.
func AppendChecklistItem(item, body string) string {
	offset, found := checklistInsertOffset(body)
	if !found {
		body = strings.TrimRight(body, " \t\r\n")
		if body != "" {
			body += "\n\n"
		}

		body += ChecklistHeader
		offset = len(body)
	}

	updated := body[:offset] + "\n- [ ] " + item + body[offset:]
	if !strings.HasSuffix(updated, "\n") {
		updated += "\n"
	}

	return updated
}

// checklistInsertOffset finds the first sub-task section in body and returns
// the offset right after its last item, or after the header when the
// section is empty. The offset points at the line break ending that line, or
// at the end of body.
func checklistInsertOffset(body string) (int, bool) {
	offset := -1
	pos := 0

	for pos <= len(body) {
		end := strings.IndexByte(body[pos:], '\n')
		if end < 0 {
			end = len(body)
		} else {
			end += pos
		}

		line := strings.TrimRight(body[pos:end], "\r")

		switch {
		case offset < 0:
			if strings.TrimSpace(line) == ChecklistHeader {
				offset = lineEnd(body, pos, end)
			}
		case checklistItemRegex.MatchString(line):
			offset = lineEnd(body, pos, end)
		default:
			return offset, true
		}

		if end == len(body) {
			break
		}

		pos = end + 1
	}

	return offset, offset >= 0
}

// lineEnd returns the offset of the end of a line's content, before any "\r".
func lineEnd(body string, start, end int) int {
	if end > start && body[end-1] == '\r' {
		return end - 1
	}

	return end
}

// SubTaskIssueBody builds the body of a sub-task issue created from a
// command. description is the command body and may be empty.
func SubTaskIssueBody(description string, parent IssueRef, projectURL string) string {
	var sb strings.Builder

	if desc := strings.TrimSpace(description); desc != "" {
		sb.WriteString(desc)
		sb.WriteString("\n\n---\n")
	}

	fmt.Fprintf(&sb, "Sub-task of %s\n", parent)

	if projectURL != "" {
		fmt.Fprintf(&sb, "Project: %s\n", projectURL)
	}

	return sb.String()
}
