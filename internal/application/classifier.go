package application

import (
	"regexp"
	"strings"

	"github.com/bnema/asne/internal/domain"
)

var ansiEscape = regexp.MustCompile(`\x1b\[[0-9;?]*[ -/]*[@-~]`)

var (
	builtinToggleAll = []*regexp.Regexp{
		regexp.MustCompile(`(?i)toggle all`),
		regexp.MustCompile(`(?i)<a>\s*to toggle all`),
	}
	builtinDefault = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\[default:?`),
		regexp.MustCompile(`\([Yy]/[Nn]\)`),
		regexp.MustCompile(`\[[Yy]/[Nn]\]`),
		regexp.MustCompile(`\([Nn]/[Yy]\)`),
		regexp.MustCompile(`\[[Nn]/[Yy]\]`),
	}
)

func StripANSI(s string) string {
	return ansiEscape.ReplaceAllString(s, "")
}

// PromptLines returns the trimmed, non-empty lines of a sanitized chunk.
func PromptLines(chunk []byte) []string {
	raw := strings.Split(StripANSI(string(chunk)), "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}

	return lines
}

type Classifier struct {
	toggleAll []*regexp.Regexp
	defaults  []*regexp.Regexp
}

func NewClassifier(extra domain.PromptRules) *Classifier {
	toggleAll := make([]*regexp.Regexp, 0, len(builtinToggleAll)+len(extra.ToggleAll))
	toggleAll = append(toggleAll, builtinToggleAll...)
	toggleAll = append(toggleAll, extra.ToggleAll...)

	defaults := make([]*regexp.Regexp, 0, len(builtinDefault)+len(extra.Default))
	defaults = append(defaults, builtinDefault...)
	defaults = append(defaults, extra.Default...)

	return &Classifier{toggleAll: toggleAll, defaults: defaults}
}

// Classify checks toggle-all patterns first; a toggle-all line is never
// also treated as a default prompt.
func (c *Classifier) Classify(line string) domain.TriggerKind {
	if matchAny(c.toggleAll, line) {
		return domain.TriggerToggleAll
	}

	if strings.Contains(line, "?") && strings.Contains(strings.ToLower(line), "default") {
		return domain.TriggerDefault
	}
	if matchAny(c.defaults, line) {
		return domain.TriggerDefault
	}

	return domain.TriggerNone
}

func matchAny(patterns []*regexp.Regexp, line string) bool {
	for _, pattern := range patterns {
		if pattern.MatchString(line) {
			return true
		}
	}
	return false
}
