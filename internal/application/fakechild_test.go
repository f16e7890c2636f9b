package application

import (
	"bufio"
	"io"
	"os"
	"sync"

	"github.com/bnema/asne/internal/domain"
	"github.com/bnema/asne/internal/ports"
)

// fakeChild is an in-memory child process driven by the test through the
// far ends of its pipes.
type fakeChild struct {
	stdinR  *io.PipeReader
	stdinW  *io.PipeWriter
	stdoutR *io.PipeReader
	stdoutW *io.PipeWriter
	stderrR *io.PipeReader
	stderrW *io.PipeWriter
	input   *bufio.Reader

	mu      sync.Mutex
	signals []os.Signal

	exited      chan struct{}
	termination domain.Termination
}

var _ ports.Child = (*fakeChild)(nil)

func newFakeChild() *fakeChild {
	c := &fakeChild{exited: make(chan struct{})}
	c.stdinR, c.stdinW = io.Pipe()
	c.stdoutR, c.stdoutW = io.Pipe()
	c.stderrR, c.stderrW = io.Pipe()
	c.input = bufio.NewReader(c.stdinR)
	return c
}

func (c *fakeChild) PID() int              { return 4242 }
func (c *fakeChild) Stdin() io.WriteCloser { return c.stdinW }
func (c *fakeChild) Stdout() io.Reader     { return c.stdoutR }
func (c *fakeChild) Stderr() io.Reader     { return c.stderrR }

func (c *fakeChild) Signal(sig os.Signal) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.signals = append(c.signals, sig)
	return nil
}

func (c *fakeChild) Signals() []os.Signal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]os.Signal(nil), c.signals...)
}

func (c *fakeChild) Exited() <-chan struct{} {
	return c.exited
}

func (c *fakeChild) Wait() (domain.Termination, error) {
	<-c.exited
	_ = c.stdoutR.Close()
	_ = c.stderrR.Close()
	return c.termination, nil
}

func (c *fakeChild) print(s string) {
	_, _ = io.WriteString(c.stdoutW, s)
}

func (c *fakeChild) printErr(s string) {
	_, _ = io.WriteString(c.stderrW, s)
}

func (c *fakeChild) readLine() (string, error) {
	return c.input.ReadString('\n')
}

func (c *fakeChild) exitWith(t domain.Termination) {
	_ = c.stdoutW.Close()
	_ = c.stderrW.Close()
	c.exitLeavingStreamsOpen(t)
}

// exitLeavingStreamsOpen models a child whose background descendants still
// hold stdout and stderr.
func (c *fakeChild) exitLeavingStreamsOpen(t domain.Termination) {
	_ = c.stdinR.Close()
	c.termination = t
	close(c.exited)
}
