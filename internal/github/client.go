// Package github creates the post-publish GitHub release. Authentication
// follows the token-then-App resolution order: an explicit token, the
// GITHUB_TOKEN environment variable, then GitHub App credentials.
package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/bradleyfalzon/ghinstallation/v2"
	gh "github.com/google/go-github/v68/github"
	"golang.org/x/oauth2"
)

// ClientConfig holds the configuration for creating a GitHub API client.
type ClientConfig struct {
	// Token is a GitHub personal access token. Falls back to the
	// GITHUB_TOKEN env var if empty.
	Token string

	// AppID is the GitHub App ID for app authentication. Falls back to the
	// GH_APP_ID env var if zero.
	AppID int64

	// AppKeyPath is the path to a GitHub App private key PEM file. Falls
	// back to the GH_APP_PRIVATE_KEY env var if empty.
	AppKeyPath string

	// Owner is the repository owner, used to locate the app installation.
	Owner string
}

// NewClient creates an authenticated GitHub API client.
func NewClient(cfg ClientConfig) (*gh.Client, error) {
	token := resolveString(cfg.Token, "GITHUB_TOKEN")
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		return gh.NewClient(oauth2.NewClient(context.Background(), ts)), nil
	}

	appID := cfg.AppID
	if appID == 0 {
		if s := os.Getenv("GH_APP_ID"); s != "" {
			if v, err := strconv.ParseInt(s, 10, 64); err == nil {
				appID = v
			}
		}
	}
	appKey := resolveString(cfg.AppKeyPath, "GH_APP_PRIVATE_KEY")

	if appID != 0 && appKey != "" {
		return newAppClient(appID, appKey, cfg.Owner)
	}

	return nil, errors.New("no GitHub authentication provided: set GITHUB_TOKEN or provide GitHub App credentials")
}

func newAppClient(appID int64, keyPath, owner string) (*gh.Client, error) {
	appTransport, err := ghinstallation.NewAppsTransportKeyFromFile(http.DefaultTransport, appID, keyPath)
	if err != nil {
		return nil, fmt.Errorf("creating GitHub App transport: %w", err)
	}

	installationID, err := findInstallation(gh.NewClient(&http.Client{Transport: appTransport}), owner)
	if err != nil {
		return nil, err
	}

	installTransport, err := ghinstallation.NewKeyFromFile(http.DefaultTransport, appID, installationID, keyPath)
	if err != nil {
		return nil, fmt.Errorf("creating installation transport: %w", err)
	}

	return gh.NewClient(&http.Client{Transport: installTransport}), nil
}

// findInstallation finds the GitHub App installation for the given owner.
func findInstallation(client *gh.Client, owner string) (int64, error) {
	ctx := context.Background()
	opts := &gh.ListOptions{PerPage: 100}

	for {
		installations, resp, err := client.Apps.ListInstallations(ctx, opts)
		if err != nil {
			return 0, fmt.Errorf("listing GitHub App installations: %w", err)
		}

		for _, inst := range installations {
			if inst.GetAccount().GetLogin() == owner {
				return inst.GetID(), nil
			}
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return 0, fmt.Errorf("no GitHub App installation found for owner %q", owner)
}

// resolveString returns the explicit value if non-empty, otherwise the env
// var value.
func resolveString(explicit, envKey string) string {
	if explicit != "" {
		return explicit
	}
	return os.Getenv(envKey)
}
