// Package config provides YAML configuration loading, defaults, and layered
// merging for npmship. All optional fields are pointers to support merge
// semantics during configuration building: an unset field never overwrites a
// previously-set one.
package config

import "github.com/npmship/npmship/internal/release"

// Config is the root configuration for a release.
type Config struct {
	// TagCommit controls whether npm version also creates a git tag.
	TagCommit *bool `yaml:"tag-commit"`

	// PreReleaseID enables the pre-release bump kinds when non-empty.
	PreReleaseID *string `yaml:"pre-release-id"`

	// BuildCmd is the shell command run by the pre-bump hook.
	BuildCmd *string `yaml:"build-cmd"`

	// VersionArgs and PublishArgs are appended verbatim to the generated
	// npm version and npm publish commands.
	VersionArgs *string `yaml:"version-args"`
	PublishArgs *string `yaml:"publish-args"`

	// DefaultChoice pre-selects an answer for the bump-kind prompt.
	DefaultChoice *string `yaml:"default-choice"`

	// Manifest is the package manifest path relative to the package
	// directory.
	Manifest *string `yaml:"manifest"`

	// RequireCleanTree aborts the release when the working tree has
	// uncommitted changes.
	RequireCleanTree *bool `yaml:"require-clean-tree"`

	// GitHubRelease creates a GitHub release after a successful publish.
	GitHubRelease *bool `yaml:"github-release"`
}

// Resolve converts a fully-built Config into the plugin's plain-value
// options. Call it only on the result of Builder.Build, where every field is
// populated.
func (cfg *Config) Resolve() release.Options {
	return release.Options{
		TagCommit:     *cfg.TagCommit,
		PreReleaseID:  *cfg.PreReleaseID,
		BuildCmd:      *cfg.BuildCmd,
		VersionArgs:   *cfg.VersionArgs,
		PublishArgs:   *cfg.PublishArgs,
		DefaultChoice: *cfg.DefaultChoice,
		ManifestPath:  *cfg.Manifest,
	}
}
