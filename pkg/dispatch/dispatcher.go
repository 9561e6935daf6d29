// Package dispatch maps a parsed intent to exactly one tmux control call
// and composes the spoken confirmation for it.
package dispatch

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/voxmux/voxmux/pkg/grammar"
)

// Controller is the external control surface the dispatcher drives. It is
// defined here, on the consumer side; pkg/tmux provides the production
// implementation.
type Controller interface {
	SelectSession(ctx context.Context, name string) error
	SelectWindow(ctx context.Context, index int) error
	SelectPane(ctx context.Context, direction string) error
	NextWindow(ctx context.Context) error
	PreviousWindow(ctx context.Context) error
	NewWindow(ctx context.Context, name string) error
	SplitPane(ctx context.Context, direction string) error
	KillPane(ctx context.Context) error
	KillWindow(ctx context.Context) error
	ToggleZoom(ctx context.Context) error
	ResizePane(ctx context.Context, direction string, amount int) error
	ListSessions(ctx context.Context) ([]string, error)
	ListWindows(ctx context.Context) ([]string, error)
	RotateLayout(ctx context.Context) error
}

// Speaker voices feedback phrases, best-effort.
type Speaker interface {
	Speak(ctx context.Context, text string)
}

// Dispatcher performs one control call per parsed intent. It holds no
// per-transcript state; concurrent dispatches may interleave their control
// calls.
type Dispatcher struct {
	ctrl  Controller
	voice Speaker
	log   *logrus.Entry
}

// New builds a Dispatcher. voice may be nil for silent operation.
func New(ctrl Controller, voice Speaker) *Dispatcher {
	return &Dispatcher{
		ctrl:  ctrl,
		voice: voice,
		log:   logrus.WithField("component", "dispatch"),
	}
}

// Dispatch executes the control call for a parsed intent and returns the
// outcome. Control failures become a Result with Handled false and the
// error text, plus a spoken "Command failed"; they never escape as errors.
func (d *Dispatcher) Dispatch(ctx context.Context, parsed *grammar.ParsedIntent) Result {
	feedback, err := d.execute(ctx, parsed)
	if err != nil {
		d.log.WithFields(logrus.Fields{
			"intent": parsed.Intent,
			"error":  err,
		}).Warn("control operation failed")
		d.speak(ctx, "Command failed")
		return Result{Intent: parsed.Intent, Error: err.Error()}
	}

	d.speak(ctx, feedback)
	return Result{Handled: true, Intent: parsed.Intent, Feedback: feedback}
}

// execute performs the single control call for the intent and returns the
// feedback phrase. An empty phrase means the operation gives visual
// feedback of its own and nothing should be spoken.
func (d *Dispatcher) execute(ctx context.Context, parsed *grammar.ParsedIntent) (string, error) {
	switch parsed.Intent {
	case grammar.IntentNavigateSession:
		name := stringSlot(parsed, "session")
		if err := d.ctrl.SelectSession(ctx, name); err != nil {
			return "", err
		}
		return fmt.Sprintf("Session %s", name), nil

	case grammar.IntentNavigateWindow:
		// A spoken digit is taken as a tmux-native index and passed
		// through; a spoken ordinal is 1-based human counting and is
		// shifted down by one.
		index, ok := intSlot(parsed, "number")
		if !ok {
			ordinal, _ := intSlot(parsed, "ordinal")
			index = ordinal - 1
		}
		if err := d.ctrl.SelectWindow(ctx, index); err != nil {
			return "", err
		}
		return fmt.Sprintf("Window %d", index), nil

	case grammar.IntentNavigatePane:
		direction := stringSlot(parsed, "direction")
		if err := d.ctrl.SelectPane(ctx, direction); err != nil {
			return "", err
		}
		return capitalize(direction), nil

	case grammar.IntentNextWindow:
		if err := d.ctrl.NextWindow(ctx); err != nil {
			return "", err
		}
		return "Next", nil

	case grammar.IntentPreviousWindow:
		if err := d.ctrl.PreviousWindow(ctx); err != nil {
			return "", err
		}
		return "Previous", nil

	case grammar.IntentCreateWindow:
		name := stringSlot(parsed, "name")
		if err := d.ctrl.NewWindow(ctx, name); err != nil {
			return "", err
		}
		if name != "" {
			return fmt.Sprintf("Created window %s", name), nil
		}
		return "New window", nil

	case grammar.IntentCreatePane:
		direction := stringSlot(parsed, "split_direction")
		if err := d.ctrl.SplitPane(ctx, direction); err != nil {
			return "", err
		}
		return fmt.Sprintf("Split %s", direction), nil

	case grammar.IntentKillPane:
		if err := d.ctrl.KillPane(ctx); err != nil {
			return "", err
		}
		return "Pane closed", nil

	case grammar.IntentKillWindow:
		if err := d.ctrl.KillWindow(ctx); err != nil {
			return "", err
		}
		return "Window closed", nil

	case grammar.IntentZoomPane:
		if err := d.ctrl.ToggleZoom(ctx); err != nil {
			return "", err
		}
		return "Zoomed", nil

	case grammar.IntentResizePane:
		direction := stringSlot(parsed, "direction")
		amount, ok := intSlot(parsed, "amount")
		if !ok {
			amount = 5
		}
		if err := d.ctrl.ResizePane(ctx, direction, amount); err != nil {
			return "", err
		}
		// Resizing is its own visual confirmation.
		return "", nil

	case grammar.IntentListSessions:
		sessions, err := d.ctrl.ListSessions(ctx)
		if err != nil {
			return "", err
		}
		if len(sessions) == 0 {
			return "No sessions", nil
		}
		return fmt.Sprintf("Sessions: %s", strings.Join(sessions, ", ")), nil

	case grammar.IntentListWindows:
		windows, err := d.ctrl.ListWindows(ctx)
		if err != nil {
			return "", err
		}
		if len(windows) == 0 {
			return "No windows", nil
		}
		return fmt.Sprintf("Windows: %s", strings.Join(windows, ", ")), nil

	case grammar.IntentRotateWindow:
		if err := d.ctrl.RotateLayout(ctx); err != nil {
			return "", err
		}
		return "Rotated", nil
	}

	return "", fmt.Errorf("no dispatch arm for intent %q", parsed.Intent)
}

func (d *Dispatcher) speak(ctx context.Context, text string) {
	if d.voice != nil && text != "" {
		d.voice.Speak(ctx, text)
	}
}

func stringSlot(parsed *grammar.ParsedIntent, name string) string {
	if v, ok := parsed.Slots[name].(string); ok {
		return v
	}
	return ""
}

func intSlot(parsed *grammar.ParsedIntent, name string) (int, bool) {
	v, ok := parsed.Slots[name].(int)
	return v, ok
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
