package domain

import (
	"fmt"
	"os"
)

type TerminationKind int

const (
	ExitedWithCode TerminationKind = iota
	KilledBySignal
)

// Termination describes how a child process ended.
type Termination struct {
	Kind   TerminationKind
	Code   int
	Signal os.Signal
}

func ExitCode(code int) Termination {
	return Termination{Kind: ExitedWithCode, Code: code}
}

func Signaled(sig os.Signal) Termination {
	return Termination{Kind: KilledBySignal, Signal: sig}
}

func (t Termination) String() string {
	if t.Kind == KilledBySignal {
		return fmt.Sprintf("signal %v", t.Signal)
	}
	return fmt.Sprintf("exit code %d", t.Code)
}
