package domain

type Mode int

const (
	// ModeNonInteractive is the zero value so an unset environment never
	// answers prompts on its own.
	ModeNonInteractive Mode = iota
	ModeInteractive
)

func (m Mode) String() string {
	if m == ModeInteractive {
		return "interactive"
	}
	return "non_interactive"
}

// Environment is computed once at startup.
type Environment struct {
	Mode Mode
}

// AutoDecide is true when prompts are answered by inspecting child output
// rather than by the idle fallback timer.
func (e Environment) AutoDecide() bool {
	return e.Mode == ModeInteractive
}
