package application

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/bnema/asne/internal/domain"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type superviseResult struct {
	termination domain.Termination
	err         error
}

func startSupervise(t *testing.T, clock *fakeClock, child *fakeChild, session Session) <-chan superviseResult {
	t.Helper()

	supervisor := NewSupervisor(SupervisorOptions{
		Clock:        clock,
		Cooldown:     500 * time.Millisecond,
		IdleInterval: 10 * time.Second,
		Logger:       zerolog.Nop(),
	})

	results := make(chan superviseResult, 1)
	go func() {
		termination, err := supervisor.Supervise(context.Background(), child, session, NewClassifier(domain.PromptRules{}))
		results <- superviseResult{termination: termination, err: err}
	}()
	return results
}

func awaitResult(t *testing.T, results <-chan superviseResult) superviseResult {
	t.Helper()

	select {
	case result := <-results:
		return result
	case <-time.After(5 * time.Second):
		t.Fatal("supervisor did not return")
		return superviseResult{}
	}
}

func TestSuperviseRelaysOutputAndMirrorsExitCode(t *testing.T) {
	t.Parallel()

	child := newFakeChild()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	results := startSupervise(t, newFakeClock(), child, Session{
		Stdin:       bytes.NewReader(nil),
		Stdout:      stdout,
		Stderr:      stderr,
		Environment: domain.Environment{Mode: domain.ModeNonInteractive},
	})

	child.print("hello\n")
	child.printErr("warning: something\n")
	child.exitWith(domain.ExitCode(2))

	result := awaitResult(t, results)
	require.NoError(t, result.err)
	assert.Equal(t, domain.ExitCode(2), result.termination)
	assert.Equal(t, "hello\n", stdout.String())
	assert.Equal(t, "warning: something\n", stderr.String())
}

func TestSuperviseAnswersDefaultPromptInAutoDecideMode(t *testing.T) {
	t.Parallel()

	child := newFakeChild()
	stdinR, stdinW := io.Pipe()
	defer stdinW.Close()
	stdout := &bytes.Buffer{}

	results := startSupervise(t, newFakeClock(), child, Session{
		Stdin:       stdinR,
		Stdout:      stdout,
		Stderr:      io.Discard,
		Environment: domain.Environment{Mode: domain.ModeInteractive},
	})

	child.print("Overwrite config.json? (y/N) ")
	answer, err := child.readLine()
	require.NoError(t, err)
	assert.Equal(t, "\n", answer)

	child.print("? Select features (Press <space> to select, <a> to toggle all)\n")
	answer, err = child.readLine()
	require.NoError(t, err)
	assert.Equal(t, "a\n", answer)

	child.exitWith(domain.ExitCode(0))

	result := awaitResult(t, results)
	require.NoError(t, result.err)
	assert.Equal(t, domain.ExitCode(0), result.termination)
	assert.Contains(t, stdout.String(), "Overwrite config.json? (y/N) ")
	assert.Contains(t, stdout.String(), "toggle all")
}

func TestSuperviseForwardsParentStdinInOrder(t *testing.T) {
	t.Parallel()

	child := newFakeChild()
	results := startSupervise(t, newFakeClock(), child, Session{
		Stdin:       bytes.NewBufferString("first\nsecond\n"),
		Stdout:      io.Discard,
		Stderr:      io.Discard,
		Environment: domain.Environment{Mode: domain.ModeInteractive},
	})

	line, err := child.readLine()
	require.NoError(t, err)
	assert.Equal(t, "first\n", line)
	line, err = child.readLine()
	require.NoError(t, err)
	assert.Equal(t, "second\n", line)

	_, err = child.readLine()
	assert.ErrorIs(t, err, io.EOF)

	child.exitWith(domain.ExitCode(0))
	require.NoError(t, awaitResult(t, results).err)
}

func TestSuperviseIdleFallbackWhenNotInteractive(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	child := newFakeChild()
	stdinR, stdinW := io.Pipe()
	defer stdinW.Close()

	results := startSupervise(t, clock, child, Session{
		Stdin:       stdinR,
		Stdout:      io.Discard,
		Stderr:      io.Discard,
		Environment: domain.Environment{Mode: domain.ModeNonInteractive},
	})

	require.Eventually(t, func() bool { return clock.Pending() == 1 }, 2*time.Second, 5*time.Millisecond)

	// Prompts are not inspected outside auto-decide mode.
	child.print("Overwrite config.json? (y/N)\n")

	clock.Advance(10 * time.Second)
	answer, err := child.readLine()
	require.NoError(t, err)
	assert.Equal(t, "a\n", answer)

	child.exitWith(domain.ExitCode(0))
	require.NoError(t, awaitResult(t, results).err)
	assert.Zero(t, clock.Pending())
}

func TestSuperviseStdinActivityReschedulesIdleFallback(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	child := newFakeChild()
	stdinR, stdinW := io.Pipe()
	defer stdinW.Close()

	results := startSupervise(t, clock, child, Session{
		Stdin:       stdinR,
		Stdout:      io.Discard,
		Stderr:      io.Discard,
		Environment: domain.Environment{Mode: domain.ModeNonInteractive},
	})
	require.Eventually(t, func() bool { return clock.Pending() == 1 }, 2*time.Second, 5*time.Millisecond)

	clock.Advance(8 * time.Second)
	go func() { _, _ = io.WriteString(stdinW, "typed\n") }()

	line, err := child.readLine()
	require.NoError(t, err)
	assert.Equal(t, "typed\n", line)

	clock.Advance(8 * time.Second)
	clock.Advance(2 * time.Second)
	answer, err := child.readLine()
	require.NoError(t, err)
	assert.Equal(t, "a\n", answer)

	child.exitWith(domain.ExitCode(0))
	require.NoError(t, awaitResult(t, results).err)
}

func TestSuperviseForwardsSignals(t *testing.T) {
	t.Parallel()

	child := newFakeChild()
	signals := make(chan os.Signal, 1)
	results := startSupervise(t, newFakeClock(), child, Session{
		Stdin:       bytes.NewReader(nil),
		Stdout:      io.Discard,
		Stderr:      io.Discard,
		Signals:     signals,
		Environment: domain.Environment{Mode: domain.ModeInteractive},
	})

	signals <- syscall.SIGTERM
	require.Eventually(t, func() bool { return len(child.Signals()) == 1 }, 2*time.Second, 5*time.Millisecond)
	assert.Equal(t, []os.Signal{syscall.SIGTERM}, child.Signals())

	child.exitWith(domain.Signaled(syscall.SIGTERM))
	result := awaitResult(t, results)
	require.NoError(t, result.err)
	assert.Equal(t, domain.KilledBySignal, result.termination.Kind)
	assert.Equal(t, syscall.SIGTERM, result.termination.Signal)
}

func TestSuperviseReturnsWhenChildExitsWithStreamsHeldOpen(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	child := newFakeChild()
	stdinR, stdinW := io.Pipe()
	defer stdinW.Close()
	stdout := &bytes.Buffer{}

	results := startSupervise(t, clock, child, Session{
		Stdin:       stdinR,
		Stdout:      stdout,
		Stderr:      io.Discard,
		Environment: domain.Environment{Mode: domain.ModeNonInteractive},
	})
	require.Eventually(t, func() bool { return clock.Pending() == 1 }, 2*time.Second, 5*time.Millisecond)

	child.print("started\n")
	child.exitLeavingStreamsOpen(domain.ExitCode(3))

	result := awaitResult(t, results)
	require.NoError(t, result.err)
	assert.Equal(t, domain.ExitCode(3), result.termination)
	assert.Equal(t, "started\n", stdout.String())
	assert.Zero(t, clock.Pending())
}

func TestSuperviseKeepsRelayingOutputFlowingAfterExit(t *testing.T) {
	t.Parallel()

	child := newFakeChild()
	stdout := &bytes.Buffer{}
	supervisor := NewSupervisor(SupervisorOptions{
		Clock:      newFakeClock(),
		DrainGrace: 250 * time.Millisecond,
		Logger:     zerolog.Nop(),
	})

	results := make(chan superviseResult, 1)
	go func() {
		termination, err := supervisor.Supervise(context.Background(), child, Session{
			Stdin:  bytes.NewReader(nil),
			Stdout: stdout,
			Stderr: io.Discard,
		}, NewClassifier(domain.PromptRules{}))
		results <- superviseResult{termination: termination, err: err}
	}()

	child.exitLeavingStreamsOpen(domain.ExitCode(0))
	for i := 0; i < 5; i++ {
		child.print("tail\n")
		time.Sleep(10 * time.Millisecond)
	}
	_ = child.stdoutW.Close()
	_ = child.stderrW.Close()

	result := awaitResult(t, results)
	require.NoError(t, result.err)
	assert.Equal(t, strings.Repeat("tail\n", 5), stdout.String())
}
