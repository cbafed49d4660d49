package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadFromBytes(t *testing.T) {
	cfg, err := LoadFromBytes([]byte(`
tag-commit: true
pre-release-id: beta
build-cmd: npm run compile
publish-args: "--tag next"
`))
	require.NoError(t, err)
	require.True(t, *cfg.TagCommit)
	require.Equal(t, "beta", *cfg.PreReleaseID)
	require.Equal(t, "npm run compile", *cfg.BuildCmd)
	require.Equal(t, "--tag next", *cfg.PublishArgs)
	// Unmentioned fields stay nil so defaults win during merge.
	require.Nil(t, cfg.VersionArgs)
	require.Nil(t, cfg.DefaultChoice)
	require.Nil(t, cfg.Manifest)
}

func TestLoadFromBytes_Invalid(t *testing.T) {
	_, err := LoadFromBytes([]byte("tag-commit: [unclosed"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "parsing config")
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "npmship.yml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "reading config file")
}

func TestFindConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.Empty(t, FindConfigFile(dir))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "npmship.yml"), []byte("tag-commit: true\n"), 0o644))
	require.Equal(t, filepath.Join(dir, "npmship.yml"), FindConfigFile(dir))

	// .github/ takes precedence over the package root.
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".github"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".github", "npmship.yml"), []byte("tag-commit: false\n"), 0o644))
	require.Equal(t, filepath.Join(dir, ".github", "npmship.yml"), FindConfigFile(dir))
}

func TestLoadedConfigMergesOverDefaults(t *testing.T) {
	loaded, err := LoadFromBytes([]byte("pre-release-id: rc\n"))
	require.NoError(t, err)

	cfg, err := NewBuilder().Add(loaded).Build()
	require.NoError(t, err)
	require.Equal(t, "rc", *cfg.PreReleaseID)
	require.Equal(t, "npm run build", *cfg.BuildCmd)
}
