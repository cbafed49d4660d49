// Package git provides the release preflight checks against the local
// repository: working-tree cleanliness and origin remote discovery.
package git

import (
	"fmt"
	"strings"

	gogit "github.com/go-git/go-git/v5"
)

// Repository wraps a local git repository.
type Repository struct {
	repo    *gogit.Repository
	workDir string
}

// Open opens the git repository containing path.
func Open(path string) (*Repository, error) {
	r, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening git repository at %s: %w", path, err)
	}

	wt, err := r.Worktree()
	if err != nil {
		return nil, fmt.Errorf("getting worktree: %w", err)
	}

	return &Repository{
		repo:    r,
		workDir: wt.Filesystem.Root(),
	}, nil
}

// WorkingDirectory returns the path to the working directory root.
func (r *Repository) WorkingDirectory() string {
	return r.workDir
}

// NumberOfUncommittedChanges returns the count of staged or unstaged changes
// in the working tree.
func (r *Repository) NumberOfUncommittedChanges() (int, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return 0, fmt.Errorf("getting worktree: %w", err)
	}

	status, err := wt.Status()
	if err != nil {
		return 0, fmt.Errorf("getting worktree status: %w", err)
	}

	count := 0
	for _, s := range status {
		if s.Staging != gogit.Unmodified || s.Worktree != gogit.Unmodified {
			count++
		}
	}

	return count, nil
}

// OriginURL returns the first URL of the origin remote.
func (r *Repository) OriginURL() (string, error) {
	remote, err := r.repo.Remote("origin")
	if err != nil {
		return "", fmt.Errorf("getting origin remote: %w", err)
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("origin remote has no URL")
	}
	return urls[0], nil
}

// ParseGitHubRemote extracts owner and repository name from a GitHub remote
// URL. It understands the https and ssh forms, with or without the .git
// suffix.
func ParseGitHubRemote(url string) (owner, repo string, err error) {
	trimmed := url
	switch {
	case strings.HasPrefix(trimmed, "git@github.com:"):
		trimmed = strings.TrimPrefix(trimmed, "git@github.com:")
	case strings.HasPrefix(trimmed, "ssh://git@github.com/"):
		trimmed = strings.TrimPrefix(trimmed, "ssh://git@github.com/")
	case strings.HasPrefix(trimmed, "https://github.com/"):
		trimmed = strings.TrimPrefix(trimmed, "https://github.com/")
	case strings.HasPrefix(trimmed, "http://github.com/"):
		trimmed = strings.TrimPrefix(trimmed, "http://github.com/")
	default:
		return "", "", fmt.Errorf("remote %q is not a GitHub URL", url)
	}

	trimmed = strings.TrimSuffix(trimmed, ".git")
	trimmed = strings.TrimSuffix(trimmed, "/")

	parts := strings.Split(trimmed, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("cannot parse owner/repo from remote %q", url)
	}
	return parts[0], parts[1], nil
}
