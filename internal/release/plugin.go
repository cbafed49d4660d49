package release

import (
	"context"
	"fmt"

	"github.com/npmship/npmship/internal/manifest"
)

// Default values applied by New when the corresponding option is unset.
const (
	DefaultBuildCmd     = "npm run build"
	DefaultManifestPath = "package.json"
)

// versionLogLabel prefixes the current-version log line emitted by the
// pre-bump and pre-publish hooks.
const versionLogLabel = "current version: "

// Options is the resolved, immutable plugin configuration. Zero values mean
// "use the default" for BuildCmd and ManifestPath and "disabled" everywhere
// else.
type Options struct {
	// TagCommit controls the --git-tag-version flag of the bump command.
	TagCommit bool

	// PreReleaseID enables the prepatch/preminor/premajor/prerelease bump
	// kinds when non-empty.
	PreReleaseID string

	// BuildCmd is the shell command run by the pre-bump hook.
	BuildCmd string

	// VersionArgs and PublishArgs are appended verbatim to the generated
	// npm version and npm publish command lines.
	VersionArgs string
	PublishArgs string

	// DefaultChoice is the pre-highlighted answer of the bump-kind prompt.
	DefaultChoice string

	// ManifestPath is the package manifest path, relative to the package
	// directory.
	ManifestPath string
}

// Plugin orchestrates one release through its four lifecycle hooks. The host
// must invoke the hooks in order, once each per release:
// PreBump, Bump, PrePublish, Publish. The plugin does not guard the order
// itself; it is a documented contract.
type Plugin struct {
	opts   Options
	collab Collaborators
}

// New creates a Plugin. Unset options fall back to their defaults.
// Construction never fails.
func New(opts Options, collab Collaborators) *Plugin {
	if opts.BuildCmd == "" {
		opts.BuildCmd = DefaultBuildCmd
	}
	if opts.ManifestPath == "" {
		opts.ManifestPath = DefaultManifestPath
	}
	return &Plugin{opts: opts, collab: collab}
}

// Options returns the resolved configuration the plugin was built with.
func (p *Plugin) Options() Options {
	return p.opts
}

// ReadCurrentVersion reads the package manifest and returns its version
// field. An unreadable manifest surfaces as a read error; unparseable
// manifest text surfaces as a *manifest.ParseError.
func (p *Plugin) ReadCurrentVersion() (string, error) {
	data, err := p.collab.Files.ReadFile(p.opts.ManifestPath)
	if err != nil {
		return "", fmt.Errorf("reading manifest %s: %w", p.opts.ManifestPath, err)
	}
	m, err := manifest.Parse(p.opts.ManifestPath, data)
	if err != nil {
		return "", err
	}
	return m.Version, nil
}

// LogCurrentVersion reads the current version and emits it through the
// logger collaborator. Read failures propagate unchanged.
func (p *Plugin) LogCurrentVersion() error {
	version, err := p.ReadCurrentVersion()
	if err != nil {
		return err
	}
	p.collab.Log.Log(versionLogLabel + version)
	return nil
}

// RunBuild executes the configured build command verbatim.
func (p *Plugin) RunBuild(ctx context.Context) error {
	return p.collab.Runner.Run(ctx, p.opts.BuildCmd)
}

// IsValidBumpKind reports whether candidate is a member of the closed
// bump-kind enumeration. The three base kinds are always valid; the four
// pre-release kinds only when a pre-release identifier is configured. The
// chooser is expected to offer only allowed values, but the result is
// re-validated here regardless of what was offered.
func (p *Plugin) IsValidBumpKind(candidate string) bool {
	for _, k := range p.allowedKinds() {
		if string(k) == candidate {
			return true
		}
	}
	return false
}

func (p *Plugin) allowedKinds() []BumpKind {
	if p.opts.PreReleaseID == "" {
		return baseKinds
	}
	return append(append([]BumpKind{}, baseKinds...), preKinds...)
}

// PromptBumpKind asks the operator for a bump kind via the chooser and
// validates the answer. An out-of-set answer fails with
// *InvalidBumpKindError.
func (p *Plugin) PromptBumpKind(ctx context.Context) (BumpKind, error) {
	allowed := p.allowedKinds()
	choices := make([]Choice, len(allowed))
	for i, k := range allowed {
		choices[i] = Choice{
			Label:       string(k),
			Value:       string(k),
			Description: kindDescriptions[k],
		}
	}

	answer, err := p.collab.Chooser.Select(ctx, "Select the release type", choices, p.opts.DefaultChoice)
	if err != nil {
		return "", fmt.Errorf("prompting for bump kind: %w", err)
	}
	if !p.IsValidBumpKind(answer) {
		return "", &InvalidBumpKindError{Choice: answer, Allowed: allowed}
	}
	return BumpKind(answer), nil
}

// VersionCommand returns the npm version command line for the given kind.
// The version args are interpolated verbatim (possibly empty) and the tag
// flag is always emitted explicitly, so npm's own tagging default never
// applies.
func (p *Plugin) VersionCommand(kind BumpKind) string {
	return fmt.Sprintf("npm version %s %s --git-tag-version=%t", kind, p.opts.VersionArgs, p.opts.TagCommit)
}

// PublishCommand returns the npm publish command line.
func (p *Plugin) PublishCommand() string {
	return fmt.Sprintf("npm publish %s", p.opts.PublishArgs)
}

// PreBump runs the build and then logs the current version. A build failure
// prevents the log step.
func (p *Plugin) PreBump(ctx context.Context) error {
	if err := p.RunBuild(ctx); err != nil {
		return err
	}
	return p.LogCurrentVersion()
}

// Bump prompts for a bump kind and runs the templated npm version command.
// The manifest version is mutated by npm, never by this plugin.
func (p *Plugin) Bump(ctx context.Context) error {
	kind, err := p.PromptBumpKind(ctx)
	if err != nil {
		return err
	}
	return p.collab.Runner.Run(ctx, p.VersionCommand(kind))
}

// PrePublish logs the bumped version.
func (p *Plugin) PrePublish(ctx context.Context) error {
	return p.LogCurrentVersion()
}

// Publish runs the npm publish command.
func (p *Plugin) Publish(ctx context.Context) error {
	return p.collab.Runner.Run(ctx, p.PublishCommand())
}
