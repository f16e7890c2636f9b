package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/asne/internal/adapters/platform"
	"github.com/bnema/asne/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissingChildBinaryFailsToSpawn(t *testing.T) {
	home := t.TempDir()
	binDir := t.TempDir()
	t.Setenv("ASNE_LAUNCHER_BIN_DIR", binDir)

	_, _, termination, err := executeCLI(t, home, nil, "--version")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSpawnFailed)
	assert.Equal(t, domain.ExitCode(1), termination)
}

func TestInvalidConfigurationIsReported(t *testing.T) {
	home := t.TempDir()
	t.Setenv("ASNE_AUTORESPOND_COOLDOWN", "later")

	_, _, _, err := executeCLI(t, home, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

// executeCLI runs the root command against home with stdin as the parent
// input. A nil stdin is an open pipe that never delivers data.
func executeCLI(t *testing.T, home string, stdin io.Reader, args ...string) (string, string, domain.Termination, error) {
	t.Helper()
	t.Setenv("HOME", home)
	t.Setenv("CODEX_AUTO_TIMEOUT", "")

	if stdin == nil {
		reader, writer := io.Pipe()
		t.Cleanup(func() { _ = writer.Close() })
		stdin = reader
	}

	signals := make(chan os.Signal)
	root, result := newRootCmd(signals)
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), *result, err
}

// installChild writes script as the platform binary into a fresh bin
// directory and points the launcher at it.
func installChild(t *testing.T, script string) string {
	t.Helper()

	target, err := domain.ResolveTarget(platform.Current())
	if err != nil {
		t.Skipf("no prebuilt target for this platform: %v", err)
	}

	binDir := t.TempDir()
	path := filepath.Join(binDir, target.BinaryName(platform.DefaultBinaryPrefix))
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	t.Setenv("ASNE_LAUNCHER_BIN_DIR", binDir)
	return binDir
}
