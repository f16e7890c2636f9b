package ports

import (
	"context"

	"github.com/bnema/asne/internal/domain"
)

type PromptRuleSource interface {
	Load(ctx context.Context) (domain.PromptRules, error)
}
