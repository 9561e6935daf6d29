package speech

import (
	"context"
	"fmt"
	"os"

	"github.com/voxmux/voxmux/pkg/exec"
)

// CommandEngine synthesizes and plays audio with external commands, e.g.
// `espeak-ng --stdout` piped to `aplay -q`. The synthesize command receives
// the text as its final argument and must write audio to stdout; the play
// command receives a path to an audio file as its final argument.
type CommandEngine struct {
	synthesize []string
	play       []string
	exec       exec.CommandExecutor
}

// NewCommandEngine builds an engine from the configured command lines.
func NewCommandEngine(executor exec.CommandExecutor, synthesize, play []string) (*CommandEngine, error) {
	if len(synthesize) == 0 || len(play) == 0 {
		return nil, fmt.Errorf("speech requires both a synthesize and a play command")
	}
	return &CommandEngine{
		synthesize: synthesize,
		play:       play,
		exec:       executor,
	}, nil
}

// Synthesize runs the synthesize command with the text appended and returns
// its stdout as audio.
func (e *CommandEngine) Synthesize(ctx context.Context, text string) ([]byte, error) {
	args := append(append([]string{}, e.synthesize[1:]...), text)
	audio, err := e.exec.ExecuteOutput(ctx, e.synthesize[0], args...)
	if err != nil {
		return nil, fmt.Errorf("synthesizing speech: %w", err)
	}
	return audio, nil
}

// Play writes the audio to a temporary file and hands it to the play
// command.
func (e *CommandEngine) Play(ctx context.Context, audio []byte) error {
	f, err := os.CreateTemp("", "voxmux-*.wav")
	if err != nil {
		return fmt.Errorf("staging audio: %w", err)
	}
	defer os.Remove(f.Name())

	if _, err := f.Write(audio); err != nil {
		f.Close()
		return fmt.Errorf("staging audio: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("staging audio: %w", err)
	}

	args := append(append([]string{}, e.play[1:]...), f.Name())
	if err := e.exec.Execute(ctx, e.play[0], args...); err != nil {
		return fmt.Errorf("playing audio: %w", err)
	}
	return nil
}
