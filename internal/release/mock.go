package release

import "context"

// Compile-time checks that the mocks implement the collaborator contracts.
var (
	_ FileReader    = (*MockFileReader)(nil)
	_ CommandRunner = (*MockCommandRunner)(nil)
	_ Chooser       = (*MockChooser)(nil)
	_ Logger        = (*MockLogger)(nil)
)

// MockFileReader is a configurable FileReader for testing. If ReadFileFunc is
// nil, ReadFile returns an empty manifest-like payload.
type MockFileReader struct {
	ReadFileFunc func(path string) ([]byte, error)
}

func (m *MockFileReader) ReadFile(path string) ([]byte, error) {
	if m.ReadFileFunc != nil {
		return m.ReadFileFunc(path)
	}
	return []byte(`{"version":"0.0.0"}`), nil
}

// MockCommandRunner records every command it is asked to run.
type MockCommandRunner struct {
	RunFunc  func(ctx context.Context, command string) error
	Commands []string
}

func (m *MockCommandRunner) Run(ctx context.Context, command string) error {
	m.Commands = append(m.Commands, command)
	if m.RunFunc != nil {
		return m.RunFunc(ctx, command)
	}
	return nil
}

// MockChooser answers the prompt without rendering anything. If SelectFunc is
// nil, Select returns the default value.
type MockChooser struct {
	SelectFunc func(ctx context.Context, question string, choices []Choice, defaultValue string) (string, error)
}

func (m *MockChooser) Select(ctx context.Context, question string, choices []Choice, defaultValue string) (string, error) {
	if m.SelectFunc != nil {
		return m.SelectFunc(ctx, question, choices, defaultValue)
	}
	return defaultValue, nil
}

// MockLogger collects logged messages.
type MockLogger struct {
	Messages []string
}

func (m *MockLogger) Log(message string) {
	m.Messages = append(m.Messages, message)
}
