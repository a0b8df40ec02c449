package ports

import (
	"context"

	"github.com/bnema/cognisupport/internal/domain"
)

type Analyzer interface {
	Analyze(ctx context.Context, request domain.InsightRequest) (domain.Insight, error)
}
