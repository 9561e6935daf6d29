package exec

import "context"

// CommandExecutor runs the external processes this tool drives: tmux for
// control operations and the configured speech commands for feedback. The
// interface exists so dispatch and controller tests can record the exact
// command lines that would run without touching a live tmux server.
type CommandExecutor interface {
	// LookPath searches PATH for an executable, like os/exec.LookPath.
	LookPath(file string) (string, error)

	// Execute runs the command and waits for it to finish, discarding
	// output. Context cancellation kills the process.
	Execute(ctx context.Context, name string, arg ...string) error

	// ExecuteOutput runs the command and returns its stdout. Stderr is
	// folded into the returned error on failure.
	ExecuteOutput(ctx context.Context, name string, arg ...string) ([]byte, error)
}
