//go:build !windows

package process

import (
	"os"
	"os/signal"
	"syscall"
	"time"
)

// raisable lists the signals the Go runtime terminates on once signal.Reset
// restores its default handling. The runtime turns SIGABRT, SIGSEGV, SIGQUIT
// and the other synchronous signals into a crash dump, and ignores SIGPIPE,
// SIGUSR1 and friends, so those end in 128+n instead.
var raisable = map[syscall.Signal]bool{
	syscall.SIGHUP:  true,
	syscall.SIGINT:  true,
	syscall.SIGTERM: true,
	syscall.SIGKILL: true,
}

// raise re-delivers sig to the launcher with the default disposition
// restored. If the process survives, Mirror falls back to 128+n.
func raise(sig os.Signal) {
	s, ok := sig.(syscall.Signal)
	if !ok || !raisable[s] {
		return
	}

	signal.Reset(s)
	if err := syscall.Kill(os.Getpid(), s); err != nil {
		return
	}
	time.Sleep(500 * time.Millisecond)
}
