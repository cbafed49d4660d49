package shell

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunner_DryRunPrintsCommand(t *testing.T) {
	var out bytes.Buffer
	r := &Runner{Dir: t.TempDir(), DryRun: true, Out: &out, Err: &out}

	err := r.Run(context.Background(), "npm publish --tag next")
	require.NoError(t, err)
	require.Equal(t, "npm publish --tag next\n", out.String())
}

func TestRunner_RunsInDir(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	r := &Runner{Dir: dir, Out: &out, Err: &out}

	err := r.Run(context.Background(), "pwd")
	require.NoError(t, err)

	// Resolve symlinks: macOS tempdirs live under /private.
	got, err := filepath.EvalSymlinks(strings.TrimSpace(out.String()))
	require.NoError(t, err)
	want, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestRunner_NonZeroExit(t *testing.T) {
	r := &Runner{Dir: t.TempDir(), Out: &bytes.Buffer{}, Err: &bytes.Buffer{}}

	err := r.Run(context.Background(), "exit 3")
	require.Error(t, err)
	require.Contains(t, err.Error(), `running "exit 3"`)
}

func TestDirReader(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte(`{"version":"1.0.0"}`), 0o644))

	data, err := DirReader{Dir: dir}.ReadFile("package.json")
	require.NoError(t, err)
	require.JSONEq(t, `{"version":"1.0.0"}`, string(data))

	_, err = DirReader{Dir: dir}.ReadFile("missing.json")
	require.ErrorIs(t, err, os.ErrNotExist)
}
