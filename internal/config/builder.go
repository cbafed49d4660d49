package config

import "fmt"

// Builder constructs a Config by layering overrides on top of defaults.
type Builder struct {
	overrides []*Config
}

// NewBuilder creates a new configuration builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add adds a configuration override. Overrides are applied in order: later
// overrides take precedence over earlier ones.
func (b *Builder) Add(override *Config) *Builder {
	if override != nil {
		b.overrides = append(b.overrides, override)
	}
	return b
}

// Build constructs the final configuration by starting with defaults,
// applying all overrides field-by-field, and validating.
func (b *Builder) Build() (*Config, error) {
	cfg := CreateDefaultConfiguration()

	for _, override := range b.overrides {
		mergeConfig(cfg, override)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// mergeConfig applies non-nil fields from src to dst.
func mergeConfig(dst, src *Config) {
	if src.TagCommit != nil {
		dst.TagCommit = src.TagCommit
	}
	if src.PreReleaseID != nil {
		dst.PreReleaseID = src.PreReleaseID
	}
	if src.BuildCmd != nil {
		dst.BuildCmd = src.BuildCmd
	}
	if src.VersionArgs != nil {
		dst.VersionArgs = src.VersionArgs
	}
	if src.PublishArgs != nil {
		dst.PublishArgs = src.PublishArgs
	}
	if src.DefaultChoice != nil {
		dst.DefaultChoice = src.DefaultChoice
	}
	if src.Manifest != nil {
		dst.Manifest = src.Manifest
	}
	if src.RequireCleanTree != nil {
		dst.RequireCleanTree = src.RequireCleanTree
	}
	if src.GitHubRelease != nil {
		dst.GitHubRelease = src.GitHubRelease
	}
}

// validate checks the built configuration for contradictions the release
// would only hit mid-flight.
func validate(cfg *Config) error {
	if *cfg.BuildCmd == "" {
		return fmt.Errorf("build-cmd must not be empty")
	}
	if *cfg.Manifest == "" {
		return fmt.Errorf("manifest must not be empty")
	}
	if choice := *cfg.DefaultChoice; choice != "" && !validDefaultChoice(choice, *cfg.PreReleaseID) {
		return fmt.Errorf("default-choice %q is not an available bump kind", choice)
	}
	return nil
}

// validDefaultChoice mirrors the plugin's bump-kind membership test so a
// misconfigured default is rejected before any hook runs.
func validDefaultChoice(choice, preReleaseID string) bool {
	switch choice {
	case "patch", "minor", "major":
		return true
	case "prepatch", "preminor", "premajor", "prerelease":
		return preReleaseID != ""
	}
	return false
}
