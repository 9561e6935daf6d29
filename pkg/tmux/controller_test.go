package tmux

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxmux/voxmux/pkg/exec"
)

func newTestClient(t *testing.T) (*Client, *exec.MockCommandExecutor) {
	t.Helper()
	mock := &exec.MockCommandExecutor{}
	client, err := NewClient(mock, "tmux")
	require.NoError(t, err)
	return client, mock
}

func TestNewClientRequiresTmuxOnPath(t *testing.T) {
	mock := &exec.MockCommandExecutor{
		LookPathFunc: func(file string) (string, error) {
			return "", errors.New("not found")
		},
	}

	_, err := NewClient(mock, "tmux")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tmux")
}

func TestClientCommandLines(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		call func(c *Client) error
		want string
	}{
		{"select session", func(c *Client) error { return c.SelectSession(ctx, "work") }, "tmux switch-client -t work"},
		{"select window", func(c *Client) error { return c.SelectWindow(ctx, 3) }, "tmux select-window -t :3"},
		{"select pane up", func(c *Client) error { return c.SelectPane(ctx, "up") }, "tmux select-pane -U"},
		{"select pane right", func(c *Client) error { return c.SelectPane(ctx, "right") }, "tmux select-pane -R"},
		{"next window", func(c *Client) error { return c.NextWindow(ctx) }, "tmux next-window"},
		{"previous window", func(c *Client) error { return c.PreviousWindow(ctx) }, "tmux previous-window"},
		{"new window unnamed", func(c *Client) error { return c.NewWindow(ctx, "") }, "tmux new-window"},
		{"new window named", func(c *Client) error { return c.NewWindow(ctx, "logs") }, "tmux new-window -n logs"},
		{"split horizontal", func(c *Client) error { return c.SplitPane(ctx, "horizontal") }, "tmux split-window -h"},
		{"split vertical", func(c *Client) error { return c.SplitPane(ctx, "vertical") }, "tmux split-window -v"},
		{"kill pane", func(c *Client) error { return c.KillPane(ctx) }, "tmux kill-pane"},
		{"kill window", func(c *Client) error { return c.KillWindow(ctx) }, "tmux kill-window"},
		{"toggle zoom", func(c *Client) error { return c.ToggleZoom(ctx) }, "tmux resize-pane -Z"},
		{"resize pane", func(c *Client) error { return c.ResizePane(ctx, "left", 10) }, "tmux resize-pane -L 10"},
		{"rotate layout", func(c *Client) error { return c.RotateLayout(ctx) }, "tmux rotate-window"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, mock := newTestClient(t)
			require.NoError(t, tt.call(client))
			assert.Equal(t, []string{tt.want}, mock.Commands)
		})
	}
}

func TestClientRejectsUnknownDirections(t *testing.T) {
	client, mock := newTestClient(t)
	ctx := context.Background()

	assert.Error(t, client.SelectPane(ctx, "sideways"))
	assert.Error(t, client.ResizePane(ctx, "sideways", 5))
	assert.Error(t, client.SplitPane(ctx, "diagonal"))
	assert.Empty(t, mock.Commands, "invalid input must not reach tmux")
}

func TestListSessions(t *testing.T) {
	client, mock := newTestClient(t)
	mock.OutputFunc = func(name string, arg ...string) ([]byte, error) {
		return []byte("work\ndotfiles\n"), nil
	}

	sessions, err := client.ListSessions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"work", "dotfiles"}, sessions)
	assert.Equal(t, []string{"tmux list-sessions -F #S"}, mock.Commands)
}

func TestListWindowsEmpty(t *testing.T) {
	client, mock := newTestClient(t)
	mock.OutputFunc = func(name string, arg ...string) ([]byte, error) {
		return []byte("\n"), nil
	}

	windows, err := client.ListWindows(context.Background())
	require.NoError(t, err)
	assert.Empty(t, windows)
}

func TestListSessionsFailure(t *testing.T) {
	client, mock := newTestClient(t)
	mock.OutputFunc = func(name string, arg ...string) ([]byte, error) {
		return nil, &exec.ExecError{Err: errors.New("exit status 1"), Output: "no server running"}
	}

	_, err := client.ListSessions(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no server running")
}
