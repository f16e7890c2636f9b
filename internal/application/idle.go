package application

import (
	"sync"
	"time"

	"github.com/bnema/asne/internal/domain"
	"github.com/bnema/asne/internal/ports"
	"github.com/rs/zerolog"
)

const DefaultIdleInterval = 10 * time.Second

// IdleAdvancer sends a toggle-all keystroke to the child after every idle
// interval without parent input.
type IdleAdvancer struct {
	clock    ports.Clock
	sink     ports.InputSink
	interval time.Duration
	logger   zerolog.Logger

	mu         sync.Mutex
	timer      ports.Timer
	generation uint64
	stopped    bool
}

func NewIdleAdvancer(clock ports.Clock, sink ports.InputSink, interval time.Duration, logger zerolog.Logger) *IdleAdvancer {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if interval <= 0 {
		interval = DefaultIdleInterval
	}

	return &IdleAdvancer{clock: clock, sink: sink, interval: interval, logger: logger}
}

func (a *IdleAdvancer) Start() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.arm()
}

// Touch re-arms the timer a full interval from now.
func (a *IdleAdvancer) Touch() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.arm()
}

func (a *IdleAdvancer) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.stopped = true
	a.generation++
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
}

// arm must be called with mu held.
func (a *IdleAdvancer) arm() {
	if a.stopped {
		return
	}
	if a.timer != nil {
		a.timer.Stop()
	}

	a.generation++
	generation := a.generation
	a.timer = a.clock.AfterFunc(a.interval, func() {
		a.fire(generation)
	})
}

func (a *IdleAdvancer) fire(generation uint64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	// A timer that lost the race with Touch or Stop must not send.
	if a.stopped || generation != a.generation {
		return
	}

	a.logger.Debug().Dur("interval", a.interval).Msg("idle interval elapsed, advancing prompt")
	a.sink.Send(domain.TriggerToggleAll.Response())
	a.arm()
}
