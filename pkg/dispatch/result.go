package dispatch

import "github.com/voxmux/voxmux/pkg/grammar"

// Result describes the outcome of handling one transcript. It is the only
// thing the dispatcher ever returns: expected failures (control errors,
// unknown input, gated confidence) are values here, never panics or
// propagated errors.
type Result struct {
	Handled  bool           `json:"handled"`
	Intent   grammar.Intent `json:"intent,omitempty"`
	Feedback string         `json:"feedback,omitempty"`
	Error    string         `json:"error,omitempty"`
}
