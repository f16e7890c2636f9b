package process

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"

	"github.com/bnema/asne/internal/domain"
	"github.com/bnema/asne/internal/ports"
)

// ForwardedSignals are relayed from the launcher to the child.
var ForwardedSignals = []os.Signal{syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP}

type Spawner struct{}

var _ ports.Spawner = Spawner{}

func NewSpawner() Spawner {
	return Spawner{}
}

// Spawn starts spec with piped stdio. The child is not bound to ctx; it
// lives until it exits on its own or is signalled.
func (Spawner) Spawn(ctx context.Context, spec domain.LaunchSpec) (ports.Child, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cmd := exec.Command(spec.Path, spec.Args...)
	cmd.Env = spec.Env

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("open stdin pipe: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("open stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, fmt.Errorf("open stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", spec.Path, err)
	}

	c := &child{
		cmd:    cmd,
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		exited: make(chan struct{}),
	}
	go c.reap()

	return c, nil
}

type child struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout io.ReadCloser
	stderr io.ReadCloser

	exited  chan struct{}
	state   *os.ProcessState
	waitErr error
}

var _ ports.Child = (*child)(nil)

func (c *child) PID() int {
	return c.cmd.Process.Pid
}

func (c *child) Stdin() io.WriteCloser {
	return c.stdin
}

func (c *child) Stdout() io.Reader {
	return c.stdout
}

func (c *child) Stderr() io.Reader {
	return c.stderr
}

func (c *child) Signal(sig os.Signal) error {
	err := deliver(c.cmd.Process, sig)
	if errors.Is(err, os.ErrProcessDone) {
		return nil
	}
	return err
}

// reap waits on the process only. Descendants that inherited the output
// pipes do not delay it.
func (c *child) reap() {
	c.state, c.waitErr = c.cmd.Process.Wait()
	close(c.exited)
}

func (c *child) Exited() <-chan struct{} {
	return c.exited
}

func (c *child) Wait() (domain.Termination, error) {
	<-c.exited
	_ = c.stdout.Close()
	_ = c.stderr.Close()

	if c.waitErr != nil {
		return domain.ExitCode(1), fmt.Errorf("wait for pid %d: %w", c.cmd.Process.Pid, c.waitErr)
	}
	return decodeState(c.state), nil
}
