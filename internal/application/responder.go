package application

import (
	"sync"
	"time"

	"github.com/bnema/asne/internal/domain"
	"github.com/bnema/asne/internal/ports"
	"github.com/rs/zerolog"
)

const DefaultCooldown = 500 * time.Millisecond

type Responder struct {
	classifier *Classifier
	sink       ports.InputSink
	clock      ports.Clock
	cooldown   time.Duration
	enabled    bool
	logger     zerolog.Logger

	mu    sync.Mutex
	state domain.PromptState
}

type ResponderOptions struct {
	Classifier *Classifier
	Sink       ports.InputSink
	Clock      ports.Clock
	Cooldown   time.Duration
	Enabled    bool
	Logger     zerolog.Logger
}

func NewResponder(opts ResponderOptions) *Responder {
	if opts.Classifier == nil {
		opts.Classifier = NewClassifier(domain.PromptRules{})
	}
	if opts.Clock == nil {
		opts.Clock = ports.SystemClock{}
	}
	if opts.Cooldown <= 0 {
		opts.Cooldown = DefaultCooldown
	}

	return &Responder{
		classifier: opts.Classifier,
		sink:       opts.Sink,
		clock:      opts.Clock,
		cooldown:   opts.Cooldown,
		enabled:    opts.Enabled,
		logger:     opts.Logger,
	}
}

// Observe inspects one chunk of child stdout and answers any prompts it
// recognises. It is a no-op unless auto-decide mode is enabled.
func (r *Responder) Observe(chunk []byte) {
	if !r.enabled {
		return
	}

	for _, line := range PromptLines(chunk) {
		kind := r.classifier.Classify(line)
		if kind == domain.TriggerNone {
			continue
		}
		r.trigger(kind, line)
	}
}

func (r *Responder) State() domain.PromptState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

func (r *Responder) trigger(kind domain.TriggerKind, line string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock.Now()
	if r.state.Suppresses(kind, line, now, r.cooldown) {
		r.logger.Trace().Str("kind", kind.String()).Str("line", line).Msg("prompt suppressed by cooldown")
		return
	}

	r.state = domain.PromptState{LastKind: kind, LastLine: line, LastTriggered: now}
	r.logger.Debug().Str("kind", kind.String()).Str("line", line).Msg("auto-responding to prompt")
	r.sink.Send(kind.Response())
}
