package grammar

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Suggest returns the catalog example phrase closest to the given input, for
// "did you mean" hints when a transcript matched nothing. The second return
// is false when nothing is close enough to be a plausible misrecognition.
func Suggest(input string) (string, bool) {
	text := strings.ToLower(strings.TrimSpace(input))
	if text == "" {
		return "", false
	}

	best := ""
	bestDist := -1
	for _, def := range catalog {
		for _, example := range def.Examples {
			d := levenshtein.ComputeDistance(text, example)
			if bestDist == -1 || d < bestDist {
				best = example
				bestDist = d
			}
		}
	}

	// Anything further than a third of the input away is probably a
	// different phrase entirely, not a near miss.
	limit := len(text) / 3
	if limit < 2 {
		limit = 2
	}
	if bestDist == -1 || bestDist > limit {
		return "", false
	}
	return best, true
}
