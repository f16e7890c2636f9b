package ports

import (
	"context"
	"io"
	"os"

	"github.com/bnema/asne/internal/domain"
)

type Spawner interface {
	Spawn(ctx context.Context, spec domain.LaunchSpec) (Child, error)
}

// Child is a running process with piped standard streams.
type Child interface {
	PID() int
	Stdin() io.WriteCloser
	Stdout() io.Reader
	Stderr() io.Reader
	// Signal delivers sig; signalling an exited child is a no-op.
	Signal(sig os.Signal) error
	// Exited is closed once the process itself has exited, even if
	// descendants still hold its output streams open.
	Exited() <-chan struct{}
	// Wait blocks until the process exits, then closes Stdout and Stderr.
	Wait() (domain.Termination, error)
}

type InputSink interface {
	Send(input string)
}
