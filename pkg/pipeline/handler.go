// Package pipeline wires matching, the confidence gate, and dispatch into
// the inbound transcript contract: one transcript in, one result out.
package pipeline

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/voxmux/voxmux/pkg/dispatch"
	"github.com/voxmux/voxmux/pkg/grammar"
)

// Handler processes transcripts delivered by the speech-to-text side. It is
// stateless per call; only the immutable compiled grammar is shared, so
// concurrent Handle calls need no locking (their control calls may still
// interleave downstream).
type Handler struct {
	matcher    *grammar.Matcher
	dispatcher *dispatch.Dispatcher
	threshold  float64
	log        *logrus.Entry
}

// New builds a Handler gated at the given confidence threshold.
func New(matcher *grammar.Matcher, dispatcher *dispatch.Dispatcher, threshold float64) *Handler {
	return &Handler{
		matcher:    matcher,
		dispatcher: dispatcher,
		threshold:  threshold,
		log:        logrus.WithField("component", "pipeline"),
	}
}

// Handle matches one transcript and, when the reported confidence clears the
// threshold, dispatches the parsed intent. Unmatched and gated transcripts
// return Handled false with no control call and no feedback.
func (h *Handler) Handle(ctx context.Context, transcript string, confidence float64) dispatch.Result {
	log := h.log.WithFields(logrus.Fields{
		"request_id": uuid.NewString(),
		"transcript": transcript,
		"confidence": confidence,
	})

	parsed := h.matcher.Match(transcript)
	if parsed == nil {
		log.Debug("no matching command")
		return dispatch.Result{}
	}

	log = log.WithField("intent", parsed.Intent)
	if confidence < h.threshold || parsed.Confidence < h.threshold {
		log.Info("confidence below threshold, ignoring")
		return dispatch.Result{}
	}

	result := h.dispatcher.Dispatch(ctx, parsed)
	if result.Handled {
		log.WithField("feedback", result.Feedback).Info("command dispatched")
	} else {
		log.WithField("error", result.Error).Warn("command failed")
	}
	return result
}
