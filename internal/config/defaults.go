package config

import "github.com/npmship/npmship/internal/release"

// CreateDefaultConfiguration returns a Config with every field populated
// with its documented default.
func CreateDefaultConfiguration() *Config {
	return &Config{
		TagCommit:        boolPtr(false),
		PreReleaseID:     stringPtr(""),
		BuildCmd:         stringPtr(release.DefaultBuildCmd),
		VersionArgs:      stringPtr(""),
		PublishArgs:      stringPtr(""),
		DefaultChoice:    stringPtr(""),
		Manifest:         stringPtr(release.DefaultManifestPath),
		RequireCleanTree: boolPtr(true),
		GitHubRelease:    boolPtr(false),
	}
}
