package grammar

// Intent identifies a recognized user goal. The set is closed: the dispatcher
// switches over every value and treats anything else as a programming error.
type Intent string

const (
	IntentNavigateSession Intent = "navigate_session"
	IntentNavigateWindow  Intent = "navigate_window"
	IntentNavigatePane    Intent = "navigate_pane"
	IntentNextWindow      Intent = "next_window"
	IntentPreviousWindow  Intent = "previous_window"
	IntentCreateWindow    Intent = "create_window"
	IntentCreatePane      Intent = "create_pane"
	IntentKillPane        Intent = "kill_pane"
	IntentKillWindow      Intent = "kill_window"
	IntentZoomPane        Intent = "zoom_pane"
	IntentResizePane      Intent = "resize_pane"
	IntentListSessions    Intent = "list_sessions"
	IntentListWindows     Intent = "list_windows"
	IntentRotateWindow    Intent = "rotate_window"
)

// SlotKind determines how a captured slot token is converted to a typed
// value, and how greedily the pattern compiler captures it: string slots
// capture the remainder of the phrase, every other kind captures exactly
// one token.
type SlotKind string

const (
	KindNumber         SlotKind = "number"
	KindString         SlotKind = "string"
	KindDirection      SlotKind = "direction"
	KindOrdinal        SlotKind = "ordinal"
	KindSplitDirection SlotKind = "split_direction"
)

// SlotSpec declares a single slot of a command definition. Default is raw
// text run through the same converter as captured input, so a default of
// "horizontal" for a split_direction slot yields the canonical value.
type SlotSpec struct {
	Kind     SlotKind `json:"kind" yaml:"kind"`
	Required bool     `json:"required" yaml:"required"`
	Default  string   `json:"default,omitempty" yaml:"default,omitempty"`
}

// CommandDefinition binds one or more phrase patterns to an intent. Patterns
// use {name} placeholders for slots; literal words match case-insensitively
// with whitespace normalized. Examples double as self-documentation and as
// the fixtures the grammar tests parse.
type CommandDefinition struct {
	Intent   Intent              `json:"intent" yaml:"intent"`
	Patterns []string            `json:"patterns" yaml:"patterns"`
	Slots    map[string]SlotSpec `json:"slots,omitempty" yaml:"slots,omitempty"`
	Examples []string            `json:"examples" yaml:"examples"`
}

// catalog is the full grammar, in priority order. Catalog order is the only
// disambiguation mechanism: the first pattern that matches wins, so more
// specific commands must be declared before broader ones.
var catalog = []CommandDefinition{
	{
		Intent: IntentNavigateSession,
		Patterns: []string{
			"switch to session {session}",
			"go to session {session}",
			"session {session}",
		},
		Slots: map[string]SlotSpec{
			"session": {Kind: KindString, Required: true},
		},
		Examples: []string{"switch to session work", "session dotfiles"},
	},
	{
		Intent: IntentNavigateWindow,
		Patterns: []string{
			"switch to window {number}",
			"go to window {number}",
			"window {number}",
		},
		Slots: map[string]SlotSpec{
			"number": {Kind: KindNumber, Required: true},
		},
		Examples: []string{"window 3", "go to window 1"},
	},
	{
		Intent: IntentNavigateWindow,
		Patterns: []string{
			"{ordinal} window",
		},
		Slots: map[string]SlotSpec{
			"ordinal": {Kind: KindOrdinal, Required: true},
		},
		Examples: []string{"third window", "1st window"},
	},
	{
		Intent: IntentNavigatePane,
		Patterns: []string{
			"pane {direction}",
			"select pane {direction}",
			"move {direction}",
			"go {direction}",
		},
		Slots: map[string]SlotSpec{
			"direction": {Kind: KindDirection, Required: true},
		},
		Examples: []string{"pane left", "go up", "move right"},
	},
	{
		Intent:   IntentNextWindow,
		Patterns: []string{"next window", "next"},
		Examples: []string{"next window", "next"},
	},
	{
		Intent:   IntentPreviousWindow,
		Patterns: []string{"previous window", "previous"},
		Examples: []string{"previous window", "previous"},
	},
	{
		Intent: IntentCreateWindow,
		Patterns: []string{
			"new window called {name}",
			"create window called {name}",
			"new window named {name}",
			"new window",
			"create window",
			"open window",
		},
		Slots: map[string]SlotSpec{
			"name": {Kind: KindString},
		},
		Examples: []string{"new window", "new window called logs"},
	},
	{
		Intent: IntentCreatePane,
		Patterns: []string{
			"split {split_direction}",
			"split pane {split_direction}",
			"split",
			"new pane",
		},
		Slots: map[string]SlotSpec{
			"split_direction": {Kind: KindSplitDirection, Default: "horizontal"},
		},
		Examples: []string{"split vertical", "split", "new pane"},
	},
	{
		Intent:   IntentKillPane,
		Patterns: []string{"close pane", "kill pane"},
		Examples: []string{"close pane"},
	},
	{
		Intent:   IntentKillWindow,
		Patterns: []string{"close window", "kill window"},
		Examples: []string{"close window"},
	},
	{
		Intent:   IntentZoomPane,
		Patterns: []string{"zoom", "zoom pane", "toggle zoom"},
		Examples: []string{"zoom", "toggle zoom"},
	},
	{
		Intent: IntentResizePane,
		Patterns: []string{
			"resize {direction} by {amount}",
			"resize {direction} {amount}",
			"resize {direction}",
		},
		Slots: map[string]SlotSpec{
			"direction": {Kind: KindDirection, Required: true},
			"amount":    {Kind: KindNumber, Default: "5"},
		},
		Examples: []string{"resize left", "resize down by 10"},
	},
	{
		Intent:   IntentListSessions,
		Patterns: []string{"list sessions", "show sessions", "what sessions"},
		Examples: []string{"list sessions"},
	},
	{
		Intent:   IntentListWindows,
		Patterns: []string{"list windows", "show windows"},
		Examples: []string{"list windows"},
	},
	{
		Intent:   IntentRotateWindow,
		Patterns: []string{"rotate", "rotate panes"},
		Examples: []string{"rotate"},
	},
}

// Catalog returns the grammar in declaration order. The returned slice is
// shared and must not be mutated.
func Catalog() []CommandDefinition {
	return catalog
}
