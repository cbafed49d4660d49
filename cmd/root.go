// Package cmd implements the npmship command line. It is the host of the
// release plugin: it wires the real collaborators, invokes the four lifecycle
// hooks in order, and runs the preflight and post-publish extras around them.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Global flags shared across commands.
var (
	flagPath      string
	flagConfig    string
	flagYes       bool
	flagDryRun    bool
	flagVerbosity string

	// Config overrides, applied only when the flag was set.
	flagTagCommit     bool
	flagPreReleaseID  string
	flagBuildCmd      string
	flagVersionArgs   string
	flagPublishArgs   string
	flagDefaultChoice string
	flagManifest      string
	flagCleanTree     bool
	flagGitHubRelease bool

	// GitHub release settings.
	flagGitHubOwner string
	flagGitHubRepo  string
	flagToken       string
)

// rootCmd is the top-level command for npmship.
var rootCmd = &cobra.Command{
	Use:   "npmship",
	Short: "Version-bump and publish an npm package",
	Long: "npmship walks an npm package through its release: it runs the build, " +
		"prompts for the version bump kind, runs npm version and npm publish, and " +
		"optionally creates a GitHub release.",
	// Default action is release.
	RunE:          releaseRunE,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagPath, "path", "p", ".", "path to the npm package directory")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file (default: auto-detect)")
	rootCmd.PersistentFlags().BoolVarP(&flagYes, "yes", "y", false, "accept the configured default-choice without prompting")
	rootCmd.PersistentFlags().BoolVar(&flagDryRun, "dry-run", false, "print the npm commands instead of running them")
	rootCmd.PersistentFlags().StringVarP(&flagVerbosity, "verbosity", "v", "info", "log verbosity: quiet, info, debug")

	rootCmd.PersistentFlags().BoolVar(&flagTagCommit, "tag-commit", false, "create a git tag during npm version")
	rootCmd.PersistentFlags().StringVar(&flagPreReleaseID, "pre-release-id", "", "pre-release identifier enabling the pre* bump kinds")
	rootCmd.PersistentFlags().StringVar(&flagBuildCmd, "build-cmd", "", "build command run before the bump")
	rootCmd.PersistentFlags().StringVar(&flagVersionArgs, "version-args", "", "extra arguments for npm version")
	rootCmd.PersistentFlags().StringVar(&flagPublishArgs, "publish-args", "", "extra arguments for npm publish")
	rootCmd.PersistentFlags().StringVar(&flagDefaultChoice, "default-choice", "", "pre-selected bump kind for the prompt")
	rootCmd.PersistentFlags().StringVar(&flagManifest, "manifest", "", "package manifest path relative to the package directory")
	rootCmd.PersistentFlags().BoolVar(&flagCleanTree, "require-clean-tree", true, "abort when the working tree has uncommitted changes")
	rootCmd.PersistentFlags().BoolVar(&flagGitHubRelease, "github-release", false, "create a GitHub release after publishing")

	rootCmd.PersistentFlags().StringVar(&flagGitHubOwner, "github-owner", "", "GitHub repository owner (default: parsed from origin)")
	rootCmd.PersistentFlags().StringVar(&flagGitHubRepo, "github-repo", "", "GitHub repository name (default: parsed from origin)")
	rootCmd.PersistentFlags().StringVar(&flagToken, "token", "", "GitHub token (default: GITHUB_TOKEN)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
