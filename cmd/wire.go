package cmd

import (
	"fmt"
	"os"

	"github.com/bnema/asne/internal/adapters/auxtool"
	"github.com/bnema/asne/internal/adapters/platform"
	"github.com/bnema/asne/internal/adapters/process"
	rulestoml "github.com/bnema/asne/internal/adapters/rules/toml"
	"github.com/bnema/asne/internal/application"
	"github.com/bnema/asne/internal/config"
	"github.com/bnema/asne/internal/logging"
	"github.com/bnema/asne/internal/ports"
	"github.com/spf13/viper"
)

type app struct {
	config   config.Config
	launcher *application.Launcher
}

func wireApp() (*app, error) {
	cfg, err := config.Load(viper.New())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := logging.New(os.Stderr, cfg.LogLevel)

	binDir := cfg.BinDir
	if binDir == "" {
		binDir, err = platform.DefaultBinDir()
		if err != nil {
			return nil, err
		}
	}
	resolver, err := platform.NewResolver(binDir, cfg.BinaryPrefix)
	if err != nil {
		return nil, fmt.Errorf("wire binary resolver: %w", err)
	}

	goos, arch := platform.Current()
	supervisor := application.NewSupervisor(application.SupervisorOptions{
		Clock:        ports.SystemClock{},
		Cooldown:     cfg.Cooldown,
		IdleInterval: cfg.IdleInterval,
		Logger:       logger,
	})

	launcher := application.NewLauncher(application.LauncherOptions{
		Platform:   application.Platform{OS: goos, Arch: arch},
		Resolver:   resolver,
		Auxiliary:  auxtool.NewRipgrepLookup(cfg.RipgrepPath, resolver.BinDir(), goos),
		Rules:      rulestoml.NewRepository(cfg.RulesPath),
		Spawner:    process.NewSpawner(),
		Supervisor: supervisor,
		Environ:    os.Environ,
		MarkerEnv:  cfg.MarkerEnv,
		Logger:     logger,
	})

	return &app{config: cfg, launcher: launcher}, nil
}
