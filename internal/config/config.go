package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/asne/internal/adapters/platform"
	"github.com/bnema/asne/internal/application"
	"github.com/bnema/asne/internal/domain"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".asne"
	envPrefix  = "ASNE"

	legacyTimeoutEnv = "CODEX_AUTO_TIMEOUT"

	KeyBinDir       = "launcher.bin_dir"
	KeyBinaryPrefix = "launcher.binary_prefix"
	KeyMarkerEnv    = "launcher.marker_env"
	KeyCooldown     = "autorespond.cooldown"
	KeyIdleInterval = "autorespond.idle_interval"
	KeyCIEnv        = "autorespond.ci_env"
	KeyRulesPath    = "autorespond.rules_path"
	KeyRipgrepPath  = "aux.rg_path"
	KeyLogLevel     = "log.level"
)

type Config struct {
	BinDir       string
	BinaryPrefix string
	MarkerEnv    string
	Cooldown     time.Duration
	IdleInterval time.Duration
	CIEnv        []string
	RulesPath    string
	RipgrepPath  string
	LogLevel     string
}

// Load reads ~/.asne/config.toml when present and applies ASNE_* environment
// overrides, e.g. ASNE_AUTORESPOND_COOLDOWN for autorespond.cooldown.
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(filepath.Join(homeDir, configDir))
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyBinaryPrefix, platform.DefaultBinaryPrefix)
	v.SetDefault(KeyMarkerEnv, application.DefaultMarkerEnv)
	v.SetDefault(KeyCooldown, application.DefaultCooldown.String())
	v.SetDefault(KeyCIEnv, application.DefaultCIEnv)
	v.SetDefault(KeyRulesPath, filepath.Join(homeDir, configDir, "prompts.toml"))
	v.SetDefault(KeyLogLevel, "disabled")

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("%w: read config file: %w", domain.ErrInvalidConfig, err)
		}
	}

	cooldown, err := parseDuration(KeyCooldown, v.GetString(KeyCooldown))
	if err != nil {
		return Config{}, err
	}
	idle, err := idleInterval(v)
	if err != nil {
		return Config{}, err
	}

	return Config{
		BinDir:       v.GetString(KeyBinDir),
		BinaryPrefix: v.GetString(KeyBinaryPrefix),
		MarkerEnv:    v.GetString(KeyMarkerEnv),
		Cooldown:     cooldown,
		IdleInterval: idle,
		CIEnv:        v.GetStringSlice(KeyCIEnv),
		RulesPath:    v.GetString(KeyRulesPath),
		RipgrepPath:  v.GetString(KeyRipgrepPath),
		LogLevel:     v.GetString(KeyLogLevel),
	}, nil
}

// idleInterval prefers autorespond.idle_interval, then the legacy
// CODEX_AUTO_TIMEOUT seconds value.
func idleInterval(v *viper.Viper) (time.Duration, error) {
	if raw := v.GetString(KeyIdleInterval); raw != "" {
		return parseDuration(KeyIdleInterval, raw)
	}

	raw := strings.TrimSpace(os.Getenv(legacyTimeoutEnv))
	if raw == "" {
		return application.DefaultIdleInterval, nil
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive number of seconds, got %q", domain.ErrInvalidConfig, legacyTimeoutEnv, raw)
	}

	return time.Duration(seconds) * time.Second, nil
}

func parseDuration(key, raw string) (time.Duration, error) {
	d, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", domain.ErrInvalidConfig, key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: %s must be positive, got %s", domain.ErrInvalidConfig, key, d)
	}

	return d, nil
}
