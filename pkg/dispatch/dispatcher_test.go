package dispatch

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxmux/voxmux/pkg/grammar"
)

// stubController records every control call and can be primed to fail.
type stubController struct {
	calls    []string
	failWith error
	sessions []string
	windows  []string
}

func (s *stubController) call(format string, args ...any) error {
	s.calls = append(s.calls, fmt.Sprintf(format, args...))
	return s.failWith
}

func (s *stubController) SelectSession(_ context.Context, name string) error {
	return s.call("select-session %s", name)
}

func (s *stubController) SelectWindow(_ context.Context, index int) error {
	return s.call("select-window %d", index)
}

func (s *stubController) SelectPane(_ context.Context, direction string) error {
	return s.call("select-pane %s", direction)
}

func (s *stubController) NextWindow(_ context.Context) error     { return s.call("next-window") }
func (s *stubController) PreviousWindow(_ context.Context) error { return s.call("previous-window") }

func (s *stubController) NewWindow(_ context.Context, name string) error {
	return s.call("new-window %q", name)
}

func (s *stubController) SplitPane(_ context.Context, direction string) error {
	return s.call("split-pane %s", direction)
}

func (s *stubController) KillPane(_ context.Context) error   { return s.call("kill-pane") }
func (s *stubController) KillWindow(_ context.Context) error { return s.call("kill-window") }
func (s *stubController) ToggleZoom(_ context.Context) error { return s.call("toggle-zoom") }

func (s *stubController) ResizePane(_ context.Context, direction string, amount int) error {
	return s.call("resize-pane %s %d", direction, amount)
}

func (s *stubController) ListSessions(_ context.Context) ([]string, error) {
	return s.sessions, s.call("list-sessions")
}

func (s *stubController) ListWindows(_ context.Context) ([]string, error) {
	return s.windows, s.call("list-windows")
}

func (s *stubController) RotateLayout(_ context.Context) error { return s.call("rotate-layout") }

// stubSpeaker records everything spoken.
type stubSpeaker struct {
	spoken []string
}

func (s *stubSpeaker) Speak(_ context.Context, text string) {
	s.spoken = append(s.spoken, text)
}

func parse(t *testing.T, input string) *grammar.ParsedIntent {
	t.Helper()
	m, err := grammar.NewMatcher(grammar.Catalog())
	require.NoError(t, err)
	parsed := m.Match(input)
	require.NotNil(t, parsed, "input %q did not match", input)
	return parsed
}

func TestDispatchWindowIndexing(t *testing.T) {
	tests := []struct {
		input    string
		wantCall string
		feedback string
	}{
		// A direct number is tmux-native and passes through unchanged.
		{"window 3", "select-window 3", "Window 3"},
		// An ordinal is human 1-based counting and shifts down by one.
		{"third window", "select-window 2", "Window 2"},
		{"1st window", "select-window 0", "Window 0"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ctrl := &stubController{}
			voice := &stubSpeaker{}
			d := New(ctrl, voice)

			result := d.Dispatch(context.Background(), parse(t, tt.input))

			require.True(t, result.Handled)
			assert.Equal(t, []string{tt.wantCall}, ctrl.calls)
			assert.Equal(t, tt.feedback, result.Feedback)
			assert.Equal(t, []string{tt.feedback}, voice.spoken)
		})
	}
}

func TestDispatchControlCalls(t *testing.T) {
	tests := []struct {
		input    string
		intent   grammar.Intent
		wantCall string
		feedback string
	}{
		{"switch to session work", grammar.IntentNavigateSession, "select-session work", "Session work"},
		{"pane left", grammar.IntentNavigatePane, "select-pane left", "Left"},
		{"go above", grammar.IntentNavigatePane, "select-pane up", "Up"},
		{"next window", grammar.IntentNextWindow, "next-window", "Next"},
		{"previous", grammar.IntentPreviousWindow, "previous-window", "Previous"},
		{"new window", grammar.IntentCreateWindow, `new-window ""`, "New window"},
		{"new window called logs", grammar.IntentCreateWindow, `new-window "logs"`, "Created window logs"},
		{"split vertical", grammar.IntentCreatePane, "split-pane vertical", "Split vertical"},
		{"split", grammar.IntentCreatePane, "split-pane horizontal", "Split horizontal"},
		{"close pane", grammar.IntentKillPane, "kill-pane", "Pane closed"},
		{"kill window", grammar.IntentKillWindow, "kill-window", "Window closed"},
		{"zoom", grammar.IntentZoomPane, "toggle-zoom", "Zoomed"},
		{"rotate", grammar.IntentRotateWindow, "rotate-layout", "Rotated"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ctrl := &stubController{}
			voice := &stubSpeaker{}
			d := New(ctrl, voice)

			result := d.Dispatch(context.Background(), parse(t, tt.input))

			require.True(t, result.Handled)
			assert.Equal(t, tt.intent, result.Intent)
			assert.Equal(t, []string{tt.wantCall}, ctrl.calls)
			assert.Equal(t, tt.feedback, result.Feedback)
		})
	}
}

func TestDispatchResizeIsSilent(t *testing.T) {
	ctrl := &stubController{}
	voice := &stubSpeaker{}
	d := New(ctrl, voice)

	result := d.Dispatch(context.Background(), parse(t, "resize left"))
	require.True(t, result.Handled)
	assert.Equal(t, []string{"resize-pane left 5"}, ctrl.calls)
	assert.Empty(t, result.Feedback)
	assert.Empty(t, voice.spoken)

	ctrl.calls = nil
	result = d.Dispatch(context.Background(), parse(t, "resize down by 10"))
	require.True(t, result.Handled)
	assert.Equal(t, []string{"resize-pane down 10"}, ctrl.calls)
}

func TestDispatchListings(t *testing.T) {
	ctrl := &stubController{sessions: []string{"work", "dotfiles"}, windows: []string{"0: vim"}}
	d := New(ctrl, nil)

	result := d.Dispatch(context.Background(), parse(t, "list sessions"))
	require.True(t, result.Handled)
	assert.Equal(t, "Sessions: work, dotfiles", result.Feedback)

	result = d.Dispatch(context.Background(), parse(t, "list windows"))
	require.True(t, result.Handled)
	assert.Equal(t, "Windows: 0: vim", result.Feedback)

	empty := New(&stubController{}, nil)
	result = empty.Dispatch(context.Background(), parse(t, "list sessions"))
	require.True(t, result.Handled)
	assert.Equal(t, "No sessions", result.Feedback)

	result = empty.Dispatch(context.Background(), parse(t, "show windows"))
	require.True(t, result.Handled)
	assert.Equal(t, "No windows", result.Feedback)
}

func TestDispatchControlFailure(t *testing.T) {
	ctrl := &stubController{failWith: errors.New("session not found")}
	voice := &stubSpeaker{}
	d := New(ctrl, voice)

	result := d.Dispatch(context.Background(), parse(t, "switch to session work"))

	assert.False(t, result.Handled)
	assert.Equal(t, grammar.IntentNavigateSession, result.Intent)
	assert.Equal(t, "session not found", result.Error)
	assert.Empty(t, result.Feedback)
	assert.Equal(t, []string{"Command failed"}, voice.spoken)
}

func TestDispatchWithoutSpeakerIsSilent(t *testing.T) {
	ctrl := &stubController{}
	d := New(ctrl, nil)

	result := d.Dispatch(context.Background(), parse(t, "zoom"))
	require.True(t, result.Handled)
}
