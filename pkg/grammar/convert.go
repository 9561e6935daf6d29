package grammar

import (
	"strconv"
	"strings"
)

// Convert turns a captured slot token into its typed value. It returns
// ok=false when the text is not recognizable as the declared kind; the
// matcher treats that as grounds to reject the whole pattern match when the
// slot is required.
func Convert(raw string, kind SlotKind) (any, bool) {
	text := strings.ToLower(strings.TrimSpace(raw))

	switch kind {
	case KindNumber:
		if n, err := strconv.Atoi(text); err == nil {
			return n, true
		}
		// Speech engines sometimes emit "3rd" where a digit was meant.
		if n, ok := ordinalWords[text]; ok {
			return n, true
		}
		return nil, false

	case KindOrdinal:
		if n, ok := ordinalWords[text]; ok {
			return n, true
		}
		if n, err := strconv.Atoi(text); err == nil {
			return n, true
		}
		return nil, false

	case KindDirection:
		if dir, ok := directionWords[text]; ok {
			return dir, true
		}
		return nil, false

	case KindSplitDirection:
		if split, ok := splitWords[text]; ok {
			return split, true
		}
		return nil, false

	case KindString:
		return strings.TrimSpace(raw), true
	}

	return nil, false
}
