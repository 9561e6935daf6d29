package speech

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubEngine counts calls and can fail either stage.
type stubEngine struct {
	synthesized []string
	played      int
	synthErr    error
	playErr     error
}

func (s *stubEngine) Synthesize(_ context.Context, text string) ([]byte, error) {
	s.synthesized = append(s.synthesized, text)
	if s.synthErr != nil {
		return nil, s.synthErr
	}
	return []byte("audio"), nil
}

func (s *stubEngine) Play(_ context.Context, audio []byte) error {
	s.played++
	return s.playErr
}

func TestSpeakSynthesizesAndPlays(t *testing.T) {
	engine := &stubEngine{}
	f := NewFeedback(engine, true)

	f.Speak(context.Background(), "Window 3")

	assert.Equal(t, []string{"Window 3"}, engine.synthesized)
	assert.Equal(t, 1, engine.played)
}

func TestSpeakDisabledIsNoOp(t *testing.T) {
	engine := &stubEngine{}
	f := NewFeedback(engine, false)

	f.Speak(context.Background(), "Window 3")

	assert.Empty(t, engine.synthesized)
	assert.Zero(t, engine.played)
}

func TestSpeakNilReceiverAndNilEngine(t *testing.T) {
	var f *Feedback
	f.Speak(context.Background(), "anything") // must not panic

	NewFeedback(nil, true).Speak(context.Background(), "anything")
}

func TestSpeakEmptyTextIsNoOp(t *testing.T) {
	engine := &stubEngine{}
	NewFeedback(engine, true).Speak(context.Background(), "")

	assert.Empty(t, engine.synthesized)
}

func TestSpeakSwallowsSynthesisFailure(t *testing.T) {
	engine := &stubEngine{synthErr: errors.New("no voice model")}
	f := NewFeedback(engine, true)

	f.Speak(context.Background(), "Window 3") // must not panic

	assert.Zero(t, engine.played, "playback must be skipped when synthesis fails")
}

func TestSpeakSwallowsPlaybackFailure(t *testing.T) {
	engine := &stubEngine{playErr: errors.New("audio device busy")}
	f := NewFeedback(engine, true)

	f.Speak(context.Background(), "Window 3") // must not panic

	assert.Equal(t, 1, engine.played)
}
