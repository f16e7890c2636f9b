package application

import (
	"context"
	"fmt"

	"github.com/bnema/asne/internal/domain"
	"github.com/bnema/asne/internal/ports"
	"github.com/rs/zerolog"
)

const DefaultMarkerEnv = "ASNE_MANAGED_BY_NPM"

type Platform struct {
	OS   domain.OS
	Arch domain.Arch
}

type LauncherOptions struct {
	Platform   Platform
	Resolver   ports.BinaryResolver
	Auxiliary  ports.AuxiliaryLookup
	Rules      ports.PromptRuleSource
	Spawner    ports.Spawner
	Supervisor *Supervisor
	Environ    func() []string
	MarkerEnv  string
	Logger     zerolog.Logger
}

// Launcher resolves the platform binary, spawns it with the augmented
// environment and supervises it to completion.
type Launcher struct {
	platform   Platform
	resolver   ports.BinaryResolver
	auxiliary  ports.AuxiliaryLookup
	rules      ports.PromptRuleSource
	spawner    ports.Spawner
	supervisor *Supervisor
	environ    func() []string
	markerEnv  string
	logger     zerolog.Logger
}

func NewLauncher(opts LauncherOptions) *Launcher {
	if opts.Supervisor == nil {
		opts.Supervisor = NewSupervisor(SupervisorOptions{Logger: opts.Logger})
	}
	if opts.Environ == nil {
		opts.Environ = func() []string { return nil }
	}

	return &Launcher{
		platform:   opts.Platform,
		resolver:   opts.Resolver,
		auxiliary:  opts.Auxiliary,
		rules:      opts.Rules,
		spawner:    opts.Spawner,
		supervisor: opts.Supervisor,
		environ:    opts.Environ,
		markerEnv:  opts.MarkerEnv,
		logger:     opts.Logger,
	}
}

// Launch returns an error only for fatal configuration and spawn failures;
// every other outcome is carried by the returned Termination.
func (l *Launcher) Launch(ctx context.Context, args []string, session Session) (domain.Termination, error) {
	path, err := l.resolver.Resolve(l.platform.OS, l.platform.Arch)
	if err != nil {
		return domain.ExitCode(1), fmt.Errorf("resolve binary: %w", err)
	}

	classifier := NewClassifier(domain.PromptRules{})
	if l.rules != nil {
		rules, err := l.rules.Load(ctx)
		if err != nil {
			return domain.ExitCode(1), fmt.Errorf("load prompt rules: %w", err)
		}
		classifier = NewClassifier(rules)
	}

	var dirs []string
	if l.auxiliary != nil {
		if dir, ok := l.auxiliary.Lookup(ctx); ok {
			l.logger.Debug().Str("dir", dir).Msg("prepending auxiliary tool directory")
			dirs = append(dirs, dir)
		}
	}

	spec := domain.LaunchSpec{
		Path: path,
		Args: append([]string(nil), args...),
		Env:  ChildEnv(l.environ(), l.platform.OS, l.markerEnv, dirs...),
	}

	child, err := l.spawner.Spawn(ctx, spec)
	if err != nil {
		return domain.ExitCode(1), fmt.Errorf("%w: %w", domain.ErrSpawnFailed, err)
	}
	l.logger.Debug().Str("path", path).Strs("args", spec.Args).Int("pid", child.PID()).Msg("child started")

	return l.supervisor.Supervise(ctx, child, session, classifier)
}
