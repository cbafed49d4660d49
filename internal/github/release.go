package github

import (
	"context"
	"fmt"
	"strings"

	gh "github.com/google/go-github/v68/github"
)

// ReleaseOptions describes the GitHub release created after a successful
// publish.
type ReleaseOptions struct {
	Owner string
	Repo  string

	// Version is the published package version, without the v prefix.
	Version string
}

// TagName returns the release tag for the version, matching the v-prefixed
// tags npm version creates.
func (o ReleaseOptions) TagName() string {
	return "v" + o.Version
}

// prerelease reports whether the version carries a pre-release suffix.
func (o ReleaseOptions) prerelease() bool {
	return strings.Contains(o.Version, "-")
}

// CreateRelease creates a GitHub release for the published version with
// generated release notes. Returns the release HTML URL.
func CreateRelease(ctx context.Context, client *gh.Client, opts ReleaseOptions) (string, error) {
	release := &gh.RepositoryRelease{
		TagName:              gh.Ptr(opts.TagName()),
		Name:                 gh.Ptr(opts.TagName()),
		Prerelease:           gh.Ptr(opts.prerelease()),
		GenerateReleaseNotes: gh.Ptr(true),
	}

	created, _, err := client.Repositories.CreateRelease(ctx, opts.Owner, opts.Repo, release)
	if err != nil {
		return "", fmt.Errorf("creating GitHub release %s: %w", opts.TagName(), err)
	}
	return created.GetHTMLURL(), nil
}
