// Package tmux drives a running tmux server through its command-line
// interface. One controller method maps to exactly one tmux command.
package tmux

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/voxmux/voxmux/pkg/exec"
)

// paneFlags maps canonical directions to tmux's select-pane/resize-pane flags.
var paneFlags = map[string]string{
	"up":    "-U",
	"down":  "-D",
	"left":  "-L",
	"right": "-R",
}

// Client issues commands to tmux through a CommandExecutor.
type Client struct {
	bin  string
	exec exec.CommandExecutor
	log  *logrus.Entry
}

// NewClient builds a Client for the given tmux binary. It verifies the
// binary is on PATH so a missing tmux surfaces at startup rather than on the
// first voice command.
func NewClient(executor exec.CommandExecutor, bin string) (*Client, error) {
	if bin == "" {
		bin = "tmux"
	}
	if _, err := executor.LookPath(bin); err != nil {
		return nil, fmt.Errorf("tmux binary %q not found: %w", bin, err)
	}
	return &Client{
		bin:  bin,
		exec: executor,
		log:  logrus.WithField("component", "tmux"),
	}, nil
}

func (c *Client) run(ctx context.Context, arg ...string) error {
	c.log.WithField("args", strings.Join(arg, " ")).Debug("running tmux command")
	return c.exec.Execute(ctx, c.bin, arg...)
}

// SelectSession switches the attached client to the named session.
func (c *Client) SelectSession(ctx context.Context, name string) error {
	return c.run(ctx, "switch-client", "-t", name)
}

// SelectWindow selects a window by index in the current session.
func (c *Client) SelectWindow(ctx context.Context, index int) error {
	return c.run(ctx, "select-window", "-t", fmt.Sprintf(":%d", index))
}

// SelectPane moves focus to the adjacent pane in the given canonical
// direction.
func (c *Client) SelectPane(ctx context.Context, direction string) error {
	flag, ok := paneFlags[direction]
	if !ok {
		return fmt.Errorf("unknown pane direction %q", direction)
	}
	return c.run(ctx, "select-pane", flag)
}

// NextWindow advances to the next window.
func (c *Client) NextWindow(ctx context.Context) error {
	return c.run(ctx, "next-window")
}

// PreviousWindow goes back to the previous window.
func (c *Client) PreviousWindow(ctx context.Context) error {
	return c.run(ctx, "previous-window")
}

// NewWindow creates a window, named when name is non-empty.
func (c *Client) NewWindow(ctx context.Context, name string) error {
	if name != "" {
		return c.run(ctx, "new-window", "-n", name)
	}
	return c.run(ctx, "new-window")
}

// SplitPane splits the active pane. A "horizontal" split puts the new pane
// beside the current one (tmux -h); "vertical" puts it underneath (tmux -v).
func (c *Client) SplitPane(ctx context.Context, direction string) error {
	switch direction {
	case "horizontal":
		return c.run(ctx, "split-window", "-h")
	case "vertical":
		return c.run(ctx, "split-window", "-v")
	default:
		return fmt.Errorf("unknown split direction %q", direction)
	}
}

// KillPane closes the active pane.
func (c *Client) KillPane(ctx context.Context) error {
	return c.run(ctx, "kill-pane")
}

// KillWindow closes the active window.
func (c *Client) KillWindow(ctx context.Context) error {
	return c.run(ctx, "kill-window")
}

// ToggleZoom toggles zoom on the active pane.
func (c *Client) ToggleZoom(ctx context.Context) error {
	return c.run(ctx, "resize-pane", "-Z")
}

// ResizePane grows the active pane by amount cells in the given direction.
func (c *Client) ResizePane(ctx context.Context, direction string, amount int) error {
	flag, ok := paneFlags[direction]
	if !ok {
		return fmt.Errorf("unknown pane direction %q", direction)
	}
	return c.run(ctx, "resize-pane", flag, fmt.Sprintf("%d", amount))
}

// ListSessions returns the names of all sessions.
func (c *Client) ListSessions(ctx context.Context) ([]string, error) {
	return c.list(ctx, "list-sessions", "-F", "#S")
}

// ListWindows returns "index: name" entries for the current session's
// windows.
func (c *Client) ListWindows(ctx context.Context) ([]string, error) {
	return c.list(ctx, "list-windows", "-F", "#I: #W")
}

// RotateLayout rotates the panes of the current window.
func (c *Client) RotateLayout(ctx context.Context) error {
	return c.run(ctx, "rotate-window")
}

func (c *Client) list(ctx context.Context, arg ...string) ([]string, error) {
	output, err := c.exec.ExecuteOutput(ctx, c.bin, arg...)
	if err != nil {
		return nil, err
	}
	var entries []string
	for _, line := range strings.Split(string(output), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			entries = append(entries, line)
		}
	}
	return entries, nil
}
