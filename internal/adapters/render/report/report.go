package report

import (
	"errors"
	"fmt"
	"io"

	"github.com/bnema/asne/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const programName = "asne"

// Render formats a fatal launcher error for w. Colour is only used when w is
// a terminal.
func Render(w io.Writer, err error) string {
	s := newStyles(lipgloss.NewRenderer(w))

	lines := []string{
		s.prefix.Render(programName+":") + " " + s.message.Render(err.Error()),
	}
	if hint := hintFor(err); hint != "" {
		lines = append(lines, s.hint.Render(hint))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func Write(w io.Writer, err error) {
	if err == nil {
		return
	}
	_, _ = fmt.Fprintln(w, Render(w, err))
}

func hintFor(err error) string {
	var platformErr *domain.UnsupportedPlatformError
	switch {
	case errors.As(err, &platformErr):
		return "supported platforms: linux, android, darwin, windows on amd64 or arm64"
	case errors.Is(err, domain.ErrSpawnFailed):
		return "check that the platform binary is installed and executable"
	case errors.Is(err, domain.ErrInvalidConfig):
		return "check ~/.asne/config.toml and ASNE_* environment variables"
	default:
		return ""
	}
}
