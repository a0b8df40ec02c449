package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bnema/cognisupport/internal/domain"
)

type AnalysisResult struct {
	Sequence uint64
	Insight  domain.Insight
	Err      error
}

// SubmitAnalysis allocates the next sequence id and makes it the only
// response the session will accept.
func (s *Session) SubmitAnalysis(title, description string) domain.InsightRequest {
	s.issued++
	s.awaiting = s.issued
	s.state = domain.LifecycleAnalyzing

	s.logger.Debug("analysis issued", slog.Uint64("sequence", s.issued))

	return domain.InsightRequest{
		Title:       title,
		Description: description,
		Sequence:    s.issued,
	}
}

// Call returns the remote analysis for request. It runs off the event loop
// and its result must be handed back to Resolve on the loop.
func (s *Session) Call(request domain.InsightRequest) func(context.Context) AnalysisResult {
	analyzer := s.analyzer

	return func(ctx context.Context) AnalysisResult {
		result := AnalysisResult{Sequence: request.Sequence}
		if analyzer == nil {
			result.Err = fmt.Errorf("analyze ticket: no analyzer configured")
			return result
		}

		insight, err := analyzer.Analyze(ctx, request)
		if err != nil {
			result.Err = fmt.Errorf("analyze ticket: %w", err)
			return result
		}
		if err := insight.Validate(); err != nil {
			result.Err = fmt.Errorf("analyze ticket: %w", err)
			return result
		}

		result.Insight = insight
		return result
	}
}

// Resolve applies a finished analysis. Only the response to the most
// recently issued request is accepted, whatever the arrival order; anything
// else leaves the session untouched. It reports whether state changed.
func (s *Session) Resolve(result AnalysisResult) bool {
	if s.awaiting == 0 || result.Sequence != s.awaiting {
		s.logger.Debug("analysis superseded",
			slog.Uint64("sequence", result.Sequence),
			slog.Uint64("latest", s.issued),
		)
		return false
	}

	s.awaiting = 0

	if result.Err != nil {
		s.insight = nil
		s.state = domain.LifecycleFailed
		s.logger.Warn("analysis failed",
			slog.Uint64("sequence", result.Sequence),
			slog.String("error", result.Err.Error()),
		)
		return true
	}

	insight := result.Insight
	s.insight = &insight
	s.state = domain.LifecycleResolved
	s.logger.Debug("analysis resolved",
		slog.Uint64("sequence", result.Sequence),
		slog.String("category", insight.Category),
		slog.String("priority", string(insight.Priority)),
	)

	return true
}
