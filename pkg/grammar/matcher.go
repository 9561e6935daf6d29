package grammar

import (
	"fmt"
	"regexp"
	"strings"
)

// MatchConfidence is assigned to every successful parse. The matcher does
// not score specificity: catalog order is the only disambiguation mechanism.
const MatchConfidence = 0.9

// ParsedIntent is the result of matching one transcript against the grammar.
type ParsedIntent struct {
	Intent     Intent         `json:"intent"`
	Slots      map[string]any `json:"slots,omitempty"`
	Confidence float64        `json:"confidence"`
	Pattern    string         `json:"pattern"`
}

// placeholderRe finds {name} slot placeholders inside a phrase pattern.
var placeholderRe = regexp.MustCompile(`\{(\w+)\}`)

// whitespaceRe collapses literal runs of whitespace in a pattern.
var whitespaceRe = regexp.MustCompile(`\s+`)

type compiledPattern struct {
	source string
	re     *regexp.Regexp
}

type compiledCommand struct {
	def      CommandDefinition
	patterns []compiledPattern
}

// Matcher holds the compiled grammar. It is immutable after construction and
// safe for concurrent use.
type Matcher struct {
	commands []compiledCommand
}

// NewMatcher compiles every pattern of every command definition. Compilation
// failures are programming errors in the catalog and surface immediately.
func NewMatcher(defs []CommandDefinition) (*Matcher, error) {
	m := &Matcher{commands: make([]compiledCommand, 0, len(defs))}
	for _, def := range defs {
		cc := compiledCommand{def: def, patterns: make([]compiledPattern, 0, len(def.Patterns))}
		for _, pattern := range def.Patterns {
			re, err := compilePattern(pattern, def.Slots)
			if err != nil {
				return nil, fmt.Errorf("compiling pattern %q for intent %s: %w", pattern, def.Intent, err)
			}
			cc.patterns = append(cc.patterns, compiledPattern{source: pattern, re: re})
		}
		m.commands = append(m.commands, cc)
	}
	return m, nil
}

// compilePattern turns a phrase pattern into an anchored regexp. Literal
// segments are metacharacter-escaped and match with flexible whitespace;
// each {name} placeholder becomes a named capture group. String slots
// capture greedily so multi-word session and window names survive; every
// other kind captures a single token so a direction or number slot cannot
// swallow trailing words.
func compilePattern(pattern string, slots map[string]SlotSpec) (*regexp.Regexp, error) {
	var b strings.Builder
	b.WriteString("^")

	last := 0
	for _, loc := range placeholderRe.FindAllStringSubmatchIndex(pattern, -1) {
		writeLiteral(&b, pattern[last:loc[0]])
		name := pattern[loc[2]:loc[3]]
		spec, ok := slots[name]
		if !ok {
			return nil, fmt.Errorf("placeholder {%s} has no slot declaration", name)
		}
		if spec.Kind == KindString {
			fmt.Fprintf(&b, `(?P<%s>.+)`, name)
		} else {
			fmt.Fprintf(&b, `(?P<%s>\S+)`, name)
		}
		last = loc[1]
	}
	writeLiteral(&b, pattern[last:])
	b.WriteString("$")

	return regexp.Compile(b.String())
}

func writeLiteral(b *strings.Builder, literal string) {
	if literal == "" {
		return
	}
	escaped := regexp.QuoteMeta(literal)
	b.WriteString(whitespaceRe.ReplaceAllLiteralString(escaped, `\s+`))
}

// Match tries the catalog in declaration order and returns the first pattern
// match whose required slots all convert to typed values, or nil when no
// pattern accepts the input. Matching is case-insensitive and tolerant of
// extra whitespace; the compiled patterns are anchored so a phrase only
// matches as a whole.
func (m *Matcher) Match(input string) *ParsedIntent {
	text := strings.ToLower(strings.TrimSpace(input))
	if text == "" {
		return nil
	}

	for _, cc := range m.commands {
		for _, cp := range cc.patterns {
			captures := matchCaptures(cp.re, text)
			if captures == nil {
				continue
			}
			slots, ok := resolveSlots(cc.def.Slots, captures)
			if !ok {
				// Shape matched but a required slot held unknown
				// vocabulary; discard and keep trying.
				continue
			}
			return &ParsedIntent{
				Intent:     cc.def.Intent,
				Slots:      slots,
				Confidence: MatchConfidence,
				Pattern:    cp.source,
			}
		}
	}
	return nil
}

// matchCaptures returns the named capture groups of re applied to text, or
// nil when the pattern does not accept the text.
func matchCaptures(re *regexp.Regexp, text string) map[string]string {
	groups := re.FindStringSubmatch(text)
	if groups == nil {
		return nil
	}
	captures := make(map[string]string)
	for i, name := range re.SubexpNames() {
		if name != "" && i < len(groups) {
			captures[name] = groups[i]
		}
	}
	return captures
}

// resolveSlots converts every captured slot to its typed value and applies
// declared defaults for absent optional slots. It reports ok=false when a
// required slot is missing or does not convert.
func resolveSlots(specs map[string]SlotSpec, captures map[string]string) (map[string]any, bool) {
	if len(specs) == 0 {
		return nil, true
	}

	slots := make(map[string]any, len(specs))
	for name, spec := range specs {
		raw, captured := captures[name]
		if !captured {
			raw = spec.Default
			if raw == "" {
				if spec.Required {
					return nil, false
				}
				continue
			}
		}
		value, ok := Convert(raw, spec.Kind)
		if !ok {
			if spec.Required {
				return nil, false
			}
			continue
		}
		slots[name] = value
	}
	return slots, true
}
