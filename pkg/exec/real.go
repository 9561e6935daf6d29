package exec

import (
	"bytes"
	"context"
	"fmt"
	osexec "os/exec"
	"strings"
)

// ExecError wraps an execution failure with whatever the process wrote, so
// callers can surface tmux's own error text ("no server running", "session
// not found") instead of a bare exit status.
type ExecError struct {
	Err    error
	Output string
}

func (e *ExecError) Error() string {
	out := strings.TrimSpace(e.Output)
	if out == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v: %s", e.Err, out)
}

func (e *ExecError) Unwrap() error {
	return e.Err
}

// RealCommandExecutor is the production CommandExecutor backed by os/exec.
type RealCommandExecutor struct{}

// LookPath searches PATH for an executable.
func (e *RealCommandExecutor) LookPath(file string) (string, error) {
	return osexec.LookPath(file)
}

// Execute runs the command and waits for it to complete.
func (e *RealCommandExecutor) Execute(ctx context.Context, name string, arg ...string) error {
	cmd := osexec.CommandContext(ctx, name, arg...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return &ExecError{Err: err, Output: string(output)}
	}
	return nil
}

// ExecuteOutput runs the command and returns its stdout. On failure the
// process's stderr is included in the returned error.
func (e *RealCommandExecutor) ExecuteOutput(ctx context.Context, name string, arg ...string) ([]byte, error) {
	cmd := osexec.CommandContext(ctx, name, arg...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	output, err := cmd.Output()
	if err != nil {
		return nil, &ExecError{Err: err, Output: stderr.String()}
	}
	return output, nil
}
