package core

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseProjectConfig decodes and validates a YAML project configuration
func ParseProjectConfig(data []byte) (ProjectConfig, error) {
	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ProjectConfig{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return ProjectConfig{}, err
	}

	return cfg, nil
}

// Validate checks repository names and makes sure every tag maps to exactly one repository
func (c ProjectConfig) Validate() error {
	if len(c.Repositories) == 0 {
		return fmt.Errorf("%w: no repositories configured", ErrInvalidConfig)
	}

	names := make([]string, 0, len(c.Repositories))
	for name := range c.Repositories {
		names = append(names, name)
	}

	sort.Strings(names)

	owners := make(map[string]string)

	for _, name := range names {
		if _, _, err := SplitRepository(name); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}

		for _, tag := range c.Repositories[name] {
			if strings.TrimSpace(tag) == "" {
				return fmt.Errorf("%w: empty tag for repository %s", ErrInvalidConfig, name)
			}

			if other, ok := owners[tag]; ok && other != name {
				return fmt.Errorf("%w: %q is used by %s and %s", ErrDuplicateTag, tag, other, name)
			}

			owners[tag] = name
		}
	}

	return nil
}
