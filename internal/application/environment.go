package application

import "github.com/bnema/asne/internal/domain"

var DefaultCIEnv = []string{
	"CI",
	"GITHUB_ACTIONS",
	"BUILD_NUMBER",
	"RUN_ID",
	"CONTINUOUS_INTEGRATION",
}

// DetectEnvironment enables auto-decide mode only outside CI and when the
// parent's stdout is a terminal. An empty variable does not count as set.
func DetectEnvironment(getenv func(string) string, ciEnv []string, stdoutIsTerminal bool) domain.Environment {
	for _, key := range ciEnv {
		if getenv(key) != "" {
			return domain.Environment{Mode: domain.ModeNonInteractive}
		}
	}
	if !stdoutIsTerminal {
		return domain.Environment{Mode: domain.ModeNonInteractive}
	}

	return domain.Environment{Mode: domain.ModeInteractive}
}
