package speech

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Feedback speaks short confirmation phrases. Every failure mode is a
// no-op: disabled feedback, a missing engine, and synthesis or playback
// errors all leave the caller's result untouched.
type Feedback struct {
	engine  Engine
	enabled bool
	log     *logrus.Entry
}

// NewFeedback wraps an engine. A nil engine yields a silent Feedback.
func NewFeedback(engine Engine, enabled bool) *Feedback {
	return &Feedback{
		engine:  engine,
		enabled: enabled,
		log:     logrus.WithField("component", "speech"),
	}
}

// Speak synthesizes and plays text, swallowing all errors.
func (f *Feedback) Speak(ctx context.Context, text string) {
	if f == nil || !f.enabled || f.engine == nil || text == "" {
		return
	}
	audio, err := f.engine.Synthesize(ctx, text)
	if err != nil {
		f.log.WithError(err).Debug("speech synthesis failed")
		return
	}
	if err := f.engine.Play(ctx, audio); err != nil {
		f.log.WithError(err).Debug("speech playback failed")
	}
}
