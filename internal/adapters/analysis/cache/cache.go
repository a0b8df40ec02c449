// Package cache memoizes successful analyses by form content. Every call
// still counts as its own request for the session's sequencing; only the
// round trip is skipped.
package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/cognisupport/internal/domain"
	"github.com/bnema/cognisupport/internal/ports"
	lru "github.com/hashicorp/golang-lru/v2"
)

type key struct {
	title       string
	description string
}

type Analyzer struct {
	next    ports.Analyzer
	entries *lru.Cache[key, domain.Insight]
}

var _ ports.Analyzer = (*Analyzer)(nil)

func New(next ports.Analyzer, size int) (*Analyzer, error) {
	if next == nil {
		return nil, errors.New("next analyzer is required")
	}

	entries, err := lru.New[key, domain.Insight](size)
	if err != nil {
		return nil, fmt.Errorf("create analysis cache: %w", err)
	}

	return &Analyzer{next: next, entries: entries}, nil
}

func (a *Analyzer) Analyze(ctx context.Context, request domain.InsightRequest) (domain.Insight, error) {
	k := key{title: request.Title, description: request.Description}
	if insight, ok := a.entries.Get(k); ok {
		return insight, nil
	}

	insight, err := a.next.Analyze(ctx, request)
	if err != nil {
		return domain.Insight{}, err
	}

	a.entries.Add(k, insight)
	return insight, nil
}

func (a *Analyzer) Len() int {
	return a.entries.Len()
}
