package auxtool

import (
	"context"
	"os"
	"path/filepath"

	"github.com/bnema/asne/internal/domain"
	"github.com/bnema/asne/internal/ports"
)

type statFunc func(name string) (os.FileInfo, error)

// RipgrepLookup locates a ripgrep executable shipped alongside the launcher
// or configured explicitly.
type RipgrepLookup struct {
	explicit   string
	bundledDir string
	goos       domain.OS
	stat       statFunc
}

var _ ports.AuxiliaryLookup = (*RipgrepLookup)(nil)

func NewRipgrepLookup(explicit, binDir string, goos domain.OS) *RipgrepLookup {
	bundled := ""
	if binDir != "" {
		bundled = filepath.Join(binDir, "..", "vendor", "ripgrep")
	}

	return &RipgrepLookup{explicit: explicit, bundledDir: bundled, goos: goos, stat: os.Stat}
}

func (l *RipgrepLookup) Lookup(ctx context.Context) (string, bool) {
	if ctx.Err() != nil {
		return "", false
	}

	for _, candidate := range l.candidates() {
		info, err := l.stat(candidate)
		if err != nil || info.IsDir() {
			continue
		}
		return filepath.Dir(candidate), true
	}

	return "", false
}

func (l *RipgrepLookup) candidates() []string {
	candidates := make([]string, 0, 2)
	if l.explicit != "" {
		candidates = append(candidates, l.explicit)
	}
	if l.bundledDir != "" {
		name := "rg"
		if l.goos == domain.OSWindows {
			name = "rg.exe"
		}
		candidates = append(candidates, filepath.Join(l.bundledDir, name))
	}

	return candidates
}
