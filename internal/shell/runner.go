// Package shell provides the default command-runner and file-reader
// collaborators, backed by the system shell and the local filesystem.
package shell

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
)

// Runner executes release command lines through `sh -c` in a fixed working
// directory. With DryRun set, commands are printed to Out instead of run.
type Runner struct {
	// Dir is the working directory commands run in.
	Dir string

	// DryRun prints command lines instead of executing them.
	DryRun bool

	// Out and Err receive the child process output. They default to
	// os.Stdout and os.Stderr.
	Out io.Writer
	Err io.Writer
}

// NewRunner creates a Runner for the given package directory.
func NewRunner(dir string) *Runner {
	return &Runner{Dir: dir, Out: os.Stdout, Err: os.Stderr}
}

// Run executes one fully-formed shell command line. A non-zero exit or spawn
// failure is returned with the command named, so operators can tell which
// external step failed.
func (r *Runner) Run(ctx context.Context, command string) error {
	out := r.Out
	if out == nil {
		out = os.Stdout
	}
	errW := r.Err
	if errW == nil {
		errW = os.Stderr
	}

	if r.DryRun {
		fmt.Fprintln(out, command)
		return nil
	}

	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	cmd.Dir = r.Dir
	cmd.Stdout = out
	cmd.Stderr = errW
	// npm publish may prompt for an OTP.
	cmd.Stdin = os.Stdin

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running %q: %w", command, err)
	}
	return nil
}

// DirReader reads files relative to a package directory. Absolute paths are
// used as-is.
type DirReader struct {
	Dir string
}

func (d DirReader) ReadFile(path string) ([]byte, error) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(d.Dir, path)
	}
	return os.ReadFile(path)
}
