package git

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/npmship/npmship/internal/testutil"
)

func TestOpen_NotARepository(t *testing.T) {
	_, err := Open(t.TempDir())
	require.Error(t, err)
	require.Contains(t, err.Error(), "opening git repository")
}

func TestNumberOfUncommittedChanges(t *testing.T) {
	tr := testutil.NewTestRepo(t)
	tr.AddCommit("initial commit")

	repo, err := Open(tr.Path())
	require.NoError(t, err)

	count, err := repo.NumberOfUncommittedChanges()
	require.NoError(t, err)
	require.Zero(t, count)

	tr.WriteFile("scratch.txt", "not committed")

	count, err = repo.NumberOfUncommittedChanges()
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestOriginURL(t *testing.T) {
	tr := testutil.NewTestRepo(t)
	tr.AddCommit("initial commit")

	repo, err := Open(tr.Path())
	require.NoError(t, err)

	_, err = repo.OriginURL()
	require.Error(t, err)

	tr.SetOrigin("git@github.com:acme/widget.git")

	repo, err = Open(tr.Path())
	require.NoError(t, err)
	url, err := repo.OriginURL()
	require.NoError(t, err)
	require.Equal(t, "git@github.com:acme/widget.git", url)
}

func TestParseGitHubRemote(t *testing.T) {
	tests := []struct {
		url       string
		wantOwner string
		wantRepo  string
		wantErr   bool
	}{
		{url: "git@github.com:acme/widget.git", wantOwner: "acme", wantRepo: "widget"},
		{url: "ssh://git@github.com/acme/widget.git", wantOwner: "acme", wantRepo: "widget"},
		{url: "https://github.com/acme/widget", wantOwner: "acme", wantRepo: "widget"},
		{url: "https://github.com/acme/widget.git", wantOwner: "acme", wantRepo: "widget"},
		{url: "https://gitlab.com/acme/widget.git", wantErr: true},
		{url: "https://github.com/acme", wantErr: true},
		{url: "git@github.com:acme/", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			owner, repo, err := ParseGitHubRemote(tt.url)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantOwner, owner)
			require.Equal(t, tt.wantRepo, repo)
		})
	}
}
