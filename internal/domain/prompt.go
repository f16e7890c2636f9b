package domain

import (
	"regexp"
	"time"
)

type TriggerKind int

const (
	TriggerNone TriggerKind = iota
	TriggerToggleAll
	TriggerDefault
)

func (k TriggerKind) String() string {
	switch k {
	case TriggerToggleAll:
		return "toggle_all"
	case TriggerDefault:
		return "default"
	default:
		return "none"
	}
}

// Response is the synthetic keystroke sequence sent to the child for k.
func (k TriggerKind) Response() string {
	switch k {
	case TriggerToggleAll:
		return "a\n"
	case TriggerDefault:
		return "\n"
	default:
		return ""
	}
}

// PromptState remembers the last auto-response so re-rendered prompts are
// not answered twice inside the cooldown window.
type PromptState struct {
	LastKind      TriggerKind
	LastLine      string
	LastTriggered time.Time
}

// Suppresses reports whether (kind, line) repeats the remembered trigger
// within cooldown of now.
func (s PromptState) Suppresses(kind TriggerKind, line string, now time.Time, cooldown time.Duration) bool {
	return s.LastKind == kind &&
		s.LastLine == line &&
		now.Sub(s.LastTriggered) < cooldown
}

// PromptRules are additional case-insensitive patterns layered on top of the
// built-in prompt heuristics.
type PromptRules struct {
	ToggleAll []*regexp.Regexp
	Default   []*regexp.Regexp
}
