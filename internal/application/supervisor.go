package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/bnema/asne/internal/domain"
	"github.com/bnema/asne/internal/ports"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const (
	relayBufferSize = 32 * 1024

	// DefaultDrainGrace bounds how long output is still relayed after the
	// child process has exited.
	DefaultDrainGrace = 200 * time.Millisecond
)

// Session is the parent side of one supervised run.
type Session struct {
	Stdin       io.Reader
	Stdout      io.Writer
	Stderr      io.Writer
	Signals     <-chan os.Signal
	Environment domain.Environment
}

type SupervisorOptions struct {
	Clock        ports.Clock
	Cooldown     time.Duration
	IdleInterval time.Duration
	DrainGrace   time.Duration
	Logger       zerolog.Logger
}

// Supervisor relays a child's standard streams, answers its prompts and
// forwards signals until the child terminates.
type Supervisor struct {
	clock        ports.Clock
	cooldown     time.Duration
	idleInterval time.Duration
	drainGrace   time.Duration
	logger       zerolog.Logger
}

func NewSupervisor(opts SupervisorOptions) *Supervisor {
	if opts.Clock == nil {
		opts.Clock = ports.SystemClock{}
	}
	if opts.Cooldown <= 0 {
		opts.Cooldown = DefaultCooldown
	}
	if opts.IdleInterval <= 0 {
		opts.IdleInterval = DefaultIdleInterval
	}
	if opts.DrainGrace <= 0 {
		opts.DrainGrace = DefaultDrainGrace
	}

	return &Supervisor{
		clock:        opts.Clock,
		cooldown:     opts.Cooldown,
		idleInterval: opts.IdleInterval,
		drainGrace:   opts.DrainGrace,
		logger:       opts.Logger,
	}
}

func (s *Supervisor) Supervise(ctx context.Context, child ports.Child, session Session, classifier *Classifier) (domain.Termination, error) {
	logger := s.logger.With().Int("pid", child.PID()).Logger()

	input := NewChildInput(child.Stdin(), logger)
	defer input.Close()

	responder := NewResponder(ResponderOptions{
		Classifier: classifier,
		Sink:       input,
		Clock:      s.clock,
		Cooldown:   s.cooldown,
		Enabled:    session.Environment.AutoDecide(),
		Logger:     logger,
	})

	var idle *IdleAdvancer
	if !session.Environment.AutoDecide() {
		idle = NewIdleAdvancer(s.clock, input, s.idleInterval, logger)
		idle.Start()
	}

	logger.Debug().Str("mode", session.Environment.Mode.String()).Msg("supervising child")

	done := make(chan struct{})
	defer close(done)

	if session.Stdin != nil {
		go forwardInput(session.Stdin, input, idle, logger)
	} else {
		input.CloseWhenDrained()
	}
	if session.Signals != nil {
		go forwardSignals(ctx, session.Signals, child, done, logger)
	}

	progress := &relayProgress{}
	var g errgroup.Group
	g.Go(func() error {
		return relay(child.Stdout(), session.Stdout, responder.Observe, progress)
	})
	g.Go(func() error {
		return relay(child.Stderr(), session.Stderr, nil, progress)
	})
	relaysDone := make(chan struct{})
	go func() {
		if err := g.Wait(); err != nil {
			logger.Trace().Err(err).Msg("relay ended with error")
		}
		close(relaysDone)
	}()

	<-child.Exited()
	if idle != nil {
		idle.Stop()
	}
	s.awaitDrain(relaysDone, progress, logger)

	// Wait closes the read ends, which releases relays still blocked on
	// streams held open by descendants.
	termination, err := child.Wait()
	<-relaysDone
	if err != nil {
		return termination, fmt.Errorf("wait for child: %w", err)
	}

	logger.Debug().Stringer("termination", termination).Msg("child terminated")
	return termination, nil
}

// relayProgress lets the supervisor tell relays that are still moving bytes
// from relays parked on a stream nobody writes to.
type relayProgress struct {
	moved   atomic.Uint64
	writing atomic.Int32
}

// awaitDrain returns once the relays finish, or once they have been stalled
// in a read for a whole drainGrace.
func (s *Supervisor) awaitDrain(relaysDone <-chan struct{}, progress *relayProgress, logger zerolog.Logger) {
	ticker := time.NewTicker(s.drainGrace)
	defer ticker.Stop()

	last := progress.moved.Load()
	for {
		select {
		case <-relaysDone:
			return
		case <-ticker.C:
			current := progress.moved.Load()
			if current == last && progress.writing.Load() == 0 {
				logger.Debug().Dur("grace", s.drainGrace).Msg("child exited with output streams still open")
				return
			}
			last = current
		}
	}
}

// relay copies src to dst chunk by chunk. A failing dst does not stop the
// copy so the child never blocks on a full pipe.
func relay(src io.Reader, dst io.Writer, observe func([]byte), progress *relayProgress) error {
	if src == nil {
		return nil
	}

	buf := make([]byte, relayBufferSize)
	for {
		n, err := src.Read(buf)
		if n > 0 {
			progress.writing.Add(1)
			if dst != nil {
				_, _ = dst.Write(buf[:n])
			}
			if observe != nil {
				observe(buf[:n])
			}
			progress.moved.Add(uint64(n))
			progress.writing.Add(-1)
		}
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, os.ErrClosed) || errors.Is(err, io.ErrClosedPipe) {
				return nil
			}
			return err
		}
	}
}

func forwardInput(src io.Reader, input *ChildInput, idle *IdleAdvancer, logger zerolog.Logger) {
	buf := make([]byte, relayBufferSize)
	for {
		n, err := src.Read(buf)
		if n > 0 {
			if idle != nil {
				idle.Touch()
			}
			_, _ = input.Write(buf[:n])
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				logger.Trace().Err(err).Msg("parent stdin read failed")
			}
			input.CloseWhenDrained()
			return
		}
	}
}

func forwardSignals(ctx context.Context, signals <-chan os.Signal, child ports.Child, done <-chan struct{}, logger zerolog.Logger) {
	for {
		select {
		case sig, ok := <-signals:
			if !ok {
				return
			}
			logger.Debug().Stringer("signal", sig).Msg("forwarding signal to child")
			if err := child.Signal(sig); err != nil {
				logger.Trace().Err(err).Stringer("signal", sig).Msg("forward signal")
			}
		case <-done:
			return
		case <-ctx.Done():
			return
		}
	}
}
