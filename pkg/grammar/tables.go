package grammar

// Canonical direction values produced by direction slot conversion.
const (
	DirectionUp    = "up"
	DirectionDown  = "down"
	DirectionLeft  = "left"
	DirectionRight = "right"
)

// Canonical split orientation values produced by split_direction slot conversion.
const (
	SplitHorizontal = "horizontal"
	SplitVertical   = "vertical"
)

// ordinalWords maps spoken ordinal forms to their integer value. Both word
// forms ("third") and digit-suffixed forms ("3rd") are covered for 1..10,
// since speech-to-text engines emit either depending on the model.
var ordinalWords = map[string]int{
	"first":   1,
	"second":  2,
	"third":   3,
	"fourth":  4,
	"fifth":   5,
	"sixth":   6,
	"seventh": 7,
	"eighth":  8,
	"ninth":   9,
	"tenth":   10,
	"1st":     1,
	"2nd":     2,
	"3rd":     3,
	"4th":     4,
	"5th":     5,
	"6th":     6,
	"7th":     7,
	"8th":     8,
	"9th":     9,
	"10th":    10,
}

// directionWords maps spoken direction synonyms to the canonical 4-way set.
var directionWords = map[string]string{
	"up":     DirectionUp,
	"top":    DirectionUp,
	"above":  DirectionUp,
	"upper":  DirectionUp,
	"down":   DirectionDown,
	"bottom": DirectionDown,
	"below":  DirectionDown,
	"lower":  DirectionDown,
	"left":   DirectionLeft,
	"right":  DirectionRight,
}

// splitWords maps spoken split orientations to the canonical pair. "side"
// means panes end up side by side (a horizontal split); "below"/"under"
// means one pane ends up under the other (a vertical split).
var splitWords = map[string]string{
	"horizontal":   SplitHorizontal,
	"horizontally": SplitHorizontal,
	"side":         SplitHorizontal,
	"vertical":     SplitVertical,
	"vertically":   SplitVertical,
	"below":        SplitVertical,
	"under":        SplitVertical,
}
