package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuilder_NoOverrides(t *testing.T) {
	cfg, err := NewBuilder().Build()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	require.False(t, *cfg.TagCommit)
	require.Empty(t, *cfg.PreReleaseID)
	require.Equal(t, "npm run build", *cfg.BuildCmd)
	require.Empty(t, *cfg.VersionArgs)
	require.Empty(t, *cfg.PublishArgs)
	require.Empty(t, *cfg.DefaultChoice)
	require.Equal(t, "package.json", *cfg.Manifest)
	require.True(t, *cfg.RequireCleanTree)
	require.False(t, *cfg.GitHubRelease)
}

func TestBuilder_PartialOverride(t *testing.T) {
	override := &Config{
		TagCommit:   boolPtr(true),
		VersionArgs: stringPtr("--no-verify"),
	}

	cfg, err := NewBuilder().Add(override).Build()
	require.NoError(t, err)
	require.True(t, *cfg.TagCommit)
	require.Equal(t, "--no-verify", *cfg.VersionArgs)
	// Defaults still present for unoverridden fields.
	require.Equal(t, "npm run build", *cfg.BuildCmd)
	require.Equal(t, "package.json", *cfg.Manifest)
}

func TestBuilder_LaterOverridesWin(t *testing.T) {
	first := &Config{BuildCmd: stringPtr("npm run compile"), PublishArgs: stringPtr("--tag next")}
	second := &Config{BuildCmd: stringPtr("make dist")}

	cfg, err := NewBuilder().Add(first).Add(second).Build()
	require.NoError(t, err)
	require.Equal(t, "make dist", *cfg.BuildCmd)
	// Fields unset in the later override survive from the earlier one.
	require.Equal(t, "--tag next", *cfg.PublishArgs)
}

func TestBuilder_NilOverrideIgnored(t *testing.T) {
	cfg, err := NewBuilder().Add(nil).Build()
	require.NoError(t, err)
	require.Equal(t, "npm run build", *cfg.BuildCmd)
}

func TestBuilder_Validation(t *testing.T) {
	tests := []struct {
		name     string
		override *Config
		wantErr  string
	}{
		{
			name:     "empty build-cmd",
			override: &Config{BuildCmd: stringPtr("")},
			wantErr:  "build-cmd must not be empty",
		},
		{
			name:     "empty manifest",
			override: &Config{Manifest: stringPtr("")},
			wantErr:  "manifest must not be empty",
		},
		{
			name:     "unknown default-choice",
			override: &Config{DefaultChoice: stringPtr("nightly")},
			wantErr:  `default-choice "nightly" is not an available bump kind`,
		},
		{
			name:     "pre-release default-choice without pre-release-id",
			override: &Config{DefaultChoice: stringPtr("prerelease")},
			wantErr:  `default-choice "prerelease" is not an available bump kind`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBuilder().Add(tt.override).Build()
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestBuilder_PreReleaseDefaultChoiceWithID(t *testing.T) {
	cfg, err := NewBuilder().Add(&Config{
		PreReleaseID:  stringPtr("beta"),
		DefaultChoice: stringPtr("prerelease"),
	}).Build()
	require.NoError(t, err)
	require.Equal(t, "prerelease", *cfg.DefaultChoice)
}

func TestResolve(t *testing.T) {
	cfg, err := NewBuilder().Add(&Config{
		TagCommit:    boolPtr(true),
		PreReleaseID: stringPtr("rc"),
		PublishArgs:  stringPtr("--tag next"),
	}).Build()
	require.NoError(t, err)

	opts := cfg.Resolve()
	require.True(t, opts.TagCommit)
	require.Equal(t, "rc", opts.PreReleaseID)
	require.Equal(t, "npm run build", opts.BuildCmd)
	require.Equal(t, "--tag next", opts.PublishArgs)
	require.Equal(t, "package.json", opts.ManifestPath)
}
