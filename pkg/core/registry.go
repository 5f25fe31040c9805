package core

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

// ResolveRepository returns the repository whose tag list contains tag.
// Tags are matched exactly. Repositories are scanned in name order, so the
// result is deterministic even if a tag is listed more than once.
func ResolveRepository(tag string, repositories map[string][]string) (string, bool) {
	names := make([]string, 0, len(repositories))
	for name := range repositories {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		if slices.Contains(repositories[name], tag) {
			return name, true
		}
	}

	return "", false
}

// SplitRepository splits an owner/repo string into its parts
func SplitRepository(fullName string) (owner, repo string, err error) {
	owner, repo, found := strings.Cut(fullName, "/")
	if !found || owner == "" || repo == "" || strings.Contains(repo, "/") {
		return "", "", fmt.Errorf("%w: %q, expected owner/repo", ErrInvalidRepository, fullName)
	}

	return owner, repo, nil
}
