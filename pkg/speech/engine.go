// Package speech provides best-effort spoken feedback. Speech is a side
// channel: nothing in here may affect the result of the command that
// triggered it.
package speech

import "context"

// Engine is the synthesis/playback contract. Implementations typically wrap
// an external text-to-speech program.
type Engine interface {
	// Synthesize renders text to audio.
	Synthesize(ctx context.Context, text string) ([]byte, error)

	// Play plays previously synthesized audio.
	Play(ctx context.Context, audio []byte) error
}
