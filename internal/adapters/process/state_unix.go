//go:build !windows

package process

import (
	"os"
	"syscall"

	"github.com/bnema/asne/internal/domain"
)

func decodeState(state *os.ProcessState) domain.Termination {
	if state == nil {
		return domain.ExitCode(1)
	}
	if status, ok := state.Sys().(syscall.WaitStatus); ok && status.Signaled() {
		return domain.Signaled(status.Signal())
	}

	code := state.ExitCode()
	if code < 0 {
		return domain.ExitCode(1)
	}
	return domain.ExitCode(code)
}

func deliver(proc *os.Process, sig os.Signal) error {
	return proc.Signal(sig)
}
