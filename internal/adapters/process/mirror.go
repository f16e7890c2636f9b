package process

import (
	"os"
	"syscall"

	"github.com/bnema/asne/internal/domain"
)

// ExitStatus is the shell-visible status for t: the exit code, or 128 plus
// the signal number.
func ExitStatus(t domain.Termination) int {
	if t.Kind != domain.KilledBySignal {
		return t.Code
	}
	if sig, ok := t.Signal.(syscall.Signal); ok {
		return 128 + int(sig)
	}
	return 1
}

// Mirror ends the launcher the same way the child ended. It does not return.
func Mirror(t domain.Termination) {
	if t.Kind == domain.KilledBySignal {
		raise(t.Signal)
	}
	os.Exit(ExitStatus(t))
}
