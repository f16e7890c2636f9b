package toml

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"

	"github.com/bnema/asne/internal/domain"
	"github.com/bnema/asne/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
)

// Repository reads extra prompt patterns from a TOML file. A missing file
// yields no extra rules.
type Repository struct {
	path string
}

var _ ports.PromptRuleSource = (*Repository)(nil)

func NewRepository(path string) *Repository {
	return &Repository{path: path}
}

func (r *Repository) Load(ctx context.Context) (domain.PromptRules, error) {
	if err := ctx.Err(); err != nil {
		return domain.PromptRules{}, err
	}
	if r.path == "" {
		return domain.PromptRules{}, nil
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.PromptRules{}, nil
		}
		return domain.PromptRules{}, fmt.Errorf("read prompt rules %q: %w", r.path, err)
	}

	var file rulesFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return domain.PromptRules{}, fmt.Errorf("%w: decode prompt rules %q: %w", domain.ErrInvalidConfig, r.path, err)
	}
	if file.Version != 0 && file.Version != currentSchemaVersion {
		return domain.PromptRules{}, fmt.Errorf("%w: unsupported prompt rules version %d", domain.ErrInvalidConfig, file.Version)
	}

	toggleAll, err := compilePatterns(file.ToggleAll)
	if err != nil {
		return domain.PromptRules{}, err
	}
	defaults, err := compilePatterns(file.Default)
	if err != nil {
		return domain.PromptRules{}, err
	}

	return domain.PromptRules{ToggleAll: toggleAll, Default: defaults}, nil
}

func compilePatterns(patterns []string) ([]*regexp.Regexp, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, pattern := range patterns {
		if pattern == "" {
			continue
		}
		re, err := regexp.Compile("(?i)" + pattern)
		if err != nil {
			return nil, fmt.Errorf("%w: compile prompt pattern %q: %w", domain.ErrInvalidConfig, pattern, err)
		}
		compiled = append(compiled, re)
	}

	return compiled, nil
}
