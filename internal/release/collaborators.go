package release

import "context"

// Choice is a single selectable option offered by the interactive chooser.
type Choice struct {
	Label       string
	Value       string
	Description string
}

// FileReader reads a file relative to the package directory.
type FileReader interface {
	ReadFile(path string) ([]byte, error)
}

// CommandRunner executes a fully-formed shell command line. It returns an
// error when the process cannot be spawned or exits non-zero.
type CommandRunner interface {
	Run(ctx context.Context, command string) error
}

// Chooser renders an interactive selection and blocks until the operator
// answers. defaultValue names the pre-highlighted choice; it may be empty.
type Chooser interface {
	Select(ctx context.Context, question string, choices []Choice, defaultValue string) (string, error)
}

// Logger emits operator-facing messages. Fire and forget.
type Logger interface {
	Log(message string)
}

// Collaborators bundles the external capabilities a Plugin needs. All four
// fields must be non-nil.
type Collaborators struct {
	Files   FileReader
	Runner  CommandRunner
	Chooser Chooser
	Log     Logger
}
