package exec

import (
	"context"
	"strings"
)

// MockCommandExecutor records every command line instead of running it.
// Tests assert against Commands; dry runs print them.
type MockCommandExecutor struct {
	// Commands holds each executed command as a single string.
	Commands []string

	// LookPathFunc overrides LookPath behavior in tests.
	LookPathFunc func(file string) (string, error)

	// ExecuteFunc overrides Execute behavior, e.g. to simulate a tmux
	// failure. The command is recorded either way.
	ExecuteFunc func(name string, arg ...string) error

	// OutputFunc supplies the stdout ExecuteOutput should return.
	OutputFunc func(name string, arg ...string) ([]byte, error)
}

// LookPath reports every binary as present unless overridden.
func (m *MockCommandExecutor) LookPath(file string) (string, error) {
	if m.LookPathFunc != nil {
		return m.LookPathFunc(file)
	}
	return "/usr/bin/" + file, nil
}

// Execute records the command that would have run.
func (m *MockCommandExecutor) Execute(ctx context.Context, name string, arg ...string) error {
	m.record(name, arg...)
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(name, arg...)
	}
	return nil
}

// ExecuteOutput records the command and returns the configured output.
func (m *MockCommandExecutor) ExecuteOutput(ctx context.Context, name string, arg ...string) ([]byte, error) {
	m.record(name, arg...)
	if m.OutputFunc != nil {
		return m.OutputFunc(name, arg...)
	}
	return nil, nil
}

func (m *MockCommandExecutor) record(name string, arg ...string) {
	cmdStr := name
	if len(arg) > 0 {
		cmdStr = name + " " + strings.Join(arg, " ")
	}
	m.Commands = append(m.Commands, cmdStr)
}
