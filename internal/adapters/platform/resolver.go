package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/bnema/asne/internal/domain"
	"github.com/bnema/asne/internal/ports"
)

const (
	DefaultBinaryPrefix = "asne"
	binariesDir         = "bin"
)

type Resolver struct {
	binDir string
	prefix string
}

var _ ports.BinaryResolver = (*Resolver)(nil)

func NewResolver(binDir, prefix string) (*Resolver, error) {
	if binDir == "" {
		return nil, fmt.Errorf("binaries directory is empty")
	}
	if prefix == "" {
		prefix = DefaultBinaryPrefix
	}

	abs, err := filepath.Abs(binDir)
	if err != nil {
		return nil, fmt.Errorf("resolve binaries directory: %w", err)
	}

	return &Resolver{binDir: abs, prefix: prefix}, nil
}

func (r *Resolver) Resolve(goos domain.OS, arch domain.Arch) (string, error) {
	target, err := domain.ResolveTarget(goos, arch)
	if err != nil {
		return "", err
	}

	return filepath.Join(r.binDir, target.BinaryName(r.prefix)), nil
}

func (r *Resolver) BinDir() string {
	return r.binDir
}

// Current reports the running operating system and CPU architecture.
func Current() (domain.OS, domain.Arch) {
	return domain.OS(runtime.GOOS), domain.Arch(runtime.GOARCH)
}

// DefaultBinDir is the bin folder of the launcher's installation root, the
// parent of the directory holding the running executable.
func DefaultBinDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate launcher executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	return filepath.Join(filepath.Dir(exe), "..", binariesDir), nil
}
