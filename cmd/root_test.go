package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRootCmd_HasExpectedFlags(t *testing.T) {
	flags := rootCmd.PersistentFlags()

	require.NotNil(t, flags.Lookup("path"))
	require.NotNil(t, flags.Lookup("config"))
	require.NotNil(t, flags.Lookup("yes"))
	require.NotNil(t, flags.Lookup("dry-run"))
	require.NotNil(t, flags.Lookup("verbosity"))
	require.NotNil(t, flags.Lookup("tag-commit"))
	require.NotNil(t, flags.Lookup("pre-release-id"))
	require.NotNil(t, flags.Lookup("build-cmd"))
	require.NotNil(t, flags.Lookup("version-args"))
	require.NotNil(t, flags.Lookup("publish-args"))
	require.NotNil(t, flags.Lookup("default-choice"))
	require.NotNil(t, flags.Lookup("manifest"))
	require.NotNil(t, flags.Lookup("require-clean-tree"))
	require.NotNil(t, flags.Lookup("github-release"))
}

func TestRootCmd_HasVersionSubcommand(t *testing.T) {
	found := false
	for _, sub := range rootCmd.Commands() {
		if sub.Name() == "version" {
			found = true
			break
		}
	}
	require.True(t, found, "version subcommand should be registered")
}
