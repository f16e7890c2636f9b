//go:build windows

package process

import (
	"os"

	"github.com/bnema/asne/internal/domain"
)

func decodeState(state *os.ProcessState) domain.Termination {
	if state == nil {
		return domain.ExitCode(1)
	}

	code := state.ExitCode()
	if code < 0 {
		return domain.ExitCode(1)
	}
	return domain.ExitCode(code)
}

// Windows cannot deliver POSIX signals to another process; anything other
// than a kill request still terminates the child.
func deliver(proc *os.Process, sig os.Signal) error {
	if sig == os.Kill {
		return proc.Kill()
	}
	if err := proc.Signal(sig); err == nil {
		return nil
	}
	return proc.Kill()
}
