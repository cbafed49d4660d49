package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/npmship/npmship/internal/config"
	"github.com/npmship/npmship/internal/git"
	"github.com/npmship/npmship/internal/github"
	"github.com/npmship/npmship/internal/prompt"
	"github.com/npmship/npmship/internal/release"
	"github.com/npmship/npmship/internal/shell"
)

func releaseRunE(cmd *cobra.Command, _ []string) error {
	logger := newLogger(flagVerbosity)

	// 1. Load configuration: defaults ← config file ← flags.
	cfg, err := loadConfig(cmd, flagPath)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	// 2. Preflight: refuse to release a dirty working tree.
	if *cfg.RequireCleanTree {
		if err := checkCleanTree(flagPath); err != nil {
			return err
		}
	}

	// 3. Wire the collaborators and build the plugin.
	opts := cfg.Resolve()

	var chooser release.Chooser = prompt.New()
	if flagYes {
		if opts.DefaultChoice == "" {
			return fmt.Errorf("--yes requires a configured default-choice")
		}
		chooser = prompt.Static{Value: opts.DefaultChoice}
	}

	runner := shell.NewRunner(flagPath)
	runner.DryRun = flagDryRun

	plugin := release.New(opts, release.Collaborators{
		Files:   shell.DirReader{Dir: flagPath},
		Runner:  runner,
		Chooser: chooser,
		Log:     slogAdapter{logger},
	})

	// 4. Run the four hooks in their contractual order, once each.
	ctx := cmd.Context()
	hooks := []struct {
		name string
		run  func(context.Context) error
	}{
		{"pre-bump", plugin.PreBump},
		{"bump", plugin.Bump},
		{"pre-publish", plugin.PrePublish},
		{"publish", plugin.Publish},
	}
	for _, hook := range hooks {
		logger.Debug("running hook", "hook", hook.name)
		if err := hook.run(ctx); err != nil {
			return fmt.Errorf("%s hook: %w", hook.name, err)
		}
	}

	// 5. Optional post-publish GitHub release.
	if *cfg.GitHubRelease && !flagDryRun {
		if err := createGitHubRelease(ctx, plugin, logger); err != nil {
			return err
		}
	}

	return nil
}

// loadConfig builds the effective configuration from defaults, an optional
// config file, and any flags set on the command line.
func loadConfig(cmd *cobra.Command, dir string) (*config.Config, error) {
	builder := config.NewBuilder()

	configPath := flagConfig
	if configPath == "" {
		configPath = config.FindConfigFile(dir)
	}
	if configPath != "" {
		fileCfg, err := config.LoadFromFile(configPath)
		if err != nil {
			return nil, err
		}
		builder.Add(fileCfg)
	}

	builder.Add(flagOverrides(cmd))

	return builder.Build()
}

// flagOverrides returns a config layer holding only the fields whose flags
// were explicitly set, so unset flags never clobber file values.
func flagOverrides(cmd *cobra.Command) *config.Config {
	override := &config.Config{}
	flags := cmd.PersistentFlags()

	if flags.Changed("tag-commit") {
		override.TagCommit = &flagTagCommit
	}
	if flags.Changed("pre-release-id") {
		override.PreReleaseID = &flagPreReleaseID
	}
	if flags.Changed("build-cmd") {
		override.BuildCmd = &flagBuildCmd
	}
	if flags.Changed("version-args") {
		override.VersionArgs = &flagVersionArgs
	}
	if flags.Changed("publish-args") {
		override.PublishArgs = &flagPublishArgs
	}
	if flags.Changed("default-choice") {
		override.DefaultChoice = &flagDefaultChoice
	}
	if flags.Changed("manifest") {
		override.Manifest = &flagManifest
	}
	if flags.Changed("require-clean-tree") {
		override.RequireCleanTree = &flagCleanTree
	}
	if flags.Changed("github-release") {
		override.GitHubRelease = &flagGitHubRelease
	}

	return override
}

// checkCleanTree aborts the release when the working tree has uncommitted
// changes.
func checkCleanTree(dir string) error {
	repo, err := git.Open(dir)
	if err != nil {
		return fmt.Errorf("preflight: %w", err)
	}
	changes, err := repo.NumberOfUncommittedChanges()
	if err != nil {
		return fmt.Errorf("preflight: %w", err)
	}
	if changes > 0 {
		return fmt.Errorf("working tree has %d uncommitted change(s); commit or stash them before releasing", changes)
	}
	return nil
}

// createGitHubRelease tags the published version on GitHub. Owner and repo
// come from flags, falling back to the origin remote.
func createGitHubRelease(ctx context.Context, plugin *release.Plugin, logger *slog.Logger) error {
	owner, repo := flagGitHubOwner, flagGitHubRepo
	if owner == "" || repo == "" {
		localRepo, err := git.Open(flagPath)
		if err != nil {
			return fmt.Errorf("locating GitHub repository: %w", err)
		}
		url, err := localRepo.OriginURL()
		if err != nil {
			return fmt.Errorf("locating GitHub repository: %w", err)
		}
		owner, repo, err = git.ParseGitHubRemote(url)
		if err != nil {
			return fmt.Errorf("locating GitHub repository: %w", err)
		}
	}

	version, err := plugin.ReadCurrentVersion()
	if err != nil {
		return err
	}

	client, err := github.NewClient(github.ClientConfig{Token: flagToken, Owner: owner})
	if err != nil {
		return err
	}

	url, err := github.CreateRelease(ctx, client, github.ReleaseOptions{
		Owner:   owner,
		Repo:    repo,
		Version: version,
	})
	if err != nil {
		return err
	}
	logger.Info("created GitHub release", "url", url)
	return nil
}

// newLogger builds the operator-facing logger for the requested verbosity.
func newLogger(verbosity string) *slog.Logger {
	level := slog.LevelInfo
	switch verbosity {
	case "quiet":
		level = slog.LevelError
	case "debug":
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// slogAdapter exposes a slog.Logger through the plugin's logger contract.
type slogAdapter struct {
	logger *slog.Logger
}

func (a slogAdapter) Log(message string) {
	a.logger.Info(message)
}
