// Package npmship provides a public Go API for running the npm release
// lifecycle: build, version bump, and publish.
//
// Basic usage:
//
//	result, err := npmship.Run(context.Background(), npmship.Options{
//	    Dir: "/path/to/package",
//	    Yes: true,
//	})
//	fmt.Println(result.Version) // "1.2.4"
package npmship

import (
	"context"
	"fmt"

	"github.com/npmship/npmship/internal/config"
	"github.com/npmship/npmship/internal/prompt"
	"github.com/npmship/npmship/internal/release"
	"github.com/npmship/npmship/internal/shell"
)

// Options configures a release run.
type Options struct {
	// Dir is the npm package directory. Defaults to "." if empty.
	Dir string

	// ConfigPath is the path to an npmship YAML config file. If empty,
	// npmship.yml is auto-detected in Dir.
	ConfigPath string

	// Yes skips the interactive prompt and uses the configured
	// default-choice. It requires a non-empty default-choice.
	Yes bool

	// DryRun prints the npm command lines instead of executing them.
	DryRun bool

	// Overrides is an optional configuration layer applied over the config
	// file. Nil fields keep the file or default value.
	Overrides *Overrides

	// Chooser overrides the interactive chooser, for embedding the release
	// flow in another UI. Nil means the terminal prompt (or the
	// default-choice when Yes is set).
	Chooser Chooser

	// Log receives operator-facing messages. Nil discards them.
	Log func(message string)
}

// Overrides mirrors the npmship configuration file. Nil fields are unset.
type Overrides struct {
	TagCommit     *bool
	PreReleaseID  *string
	BuildCmd      *string
	VersionArgs   *string
	PublishArgs   *string
	DefaultChoice *string
	Manifest      *string
}

// Choice is one selectable bump kind offered to a custom Chooser.
type Choice = release.Choice

// Chooser answers the bump-kind prompt.
type Chooser = release.Chooser

// Result holds the outcome of a release run.
type Result struct {
	// Version is the package version after the bump, as published.
	Version string
}

// Run executes the full release sequence: pre-bump, bump, pre-publish,
// publish. Each hook runs once, in order; the first failure aborts the run.
func Run(ctx context.Context, opts Options) (*Result, error) {
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}

	cfg, err := buildConfig(dir, opts)
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	resolved := cfg.Resolve()

	chooser := opts.Chooser
	if chooser == nil {
		if opts.Yes {
			if resolved.DefaultChoice == "" {
				return nil, fmt.Errorf("Yes requires a configured default-choice")
			}
			chooser = prompt.Static{Value: resolved.DefaultChoice}
		} else {
			chooser = prompt.New()
		}
	}

	logFn := opts.Log
	if logFn == nil {
		logFn = func(string) {}
	}

	runner := shell.NewRunner(dir)
	runner.DryRun = opts.DryRun

	plugin := release.New(resolved, release.Collaborators{
		Files:   shell.DirReader{Dir: dir},
		Runner:  runner,
		Chooser: chooser,
		Log:     funcLogger(logFn),
	})

	for _, hook := range []func(context.Context) error{
		plugin.PreBump,
		plugin.Bump,
		plugin.PrePublish,
		plugin.Publish,
	} {
		if err := hook(ctx); err != nil {
			return nil, err
		}
	}

	version, err := plugin.ReadCurrentVersion()
	if err != nil {
		return nil, err
	}
	return &Result{Version: version}, nil
}

func buildConfig(dir string, opts Options) (*config.Config, error) {
	builder := config.NewBuilder()

	configPath := opts.ConfigPath
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

	if o := opts.Overrides; o != nil {
		builder.Add(&config.Config{
			TagCommit:     o.TagCommit,
			PreReleaseID:  o.PreReleaseID,
			BuildCmd:      o.BuildCmd,
			VersionArgs:   o.VersionArgs,
			PublishArgs:   o.PublishArgs,
			DefaultChoice: o.DefaultChoice,
			Manifest:      o.Manifest,
		})
	}

	return builder.Build()
}

// funcLogger adapts a plain function to the plugin's logger contract.
type funcLogger func(string)

func (f funcLogger) Log(message string) {
	f(message)
}
