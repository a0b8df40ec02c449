package application

import (
	"io"
	"log/slog"
	"slices"

	"github.com/bnema/cognisupport/internal/domain"
	"github.com/bnema/cognisupport/internal/ports"
)

// Session owns the state of one intake form: the raw and debounced field
// values, the insight lifecycle and the ticket collection. It is confined to
// a single event loop and is not safe for concurrent use.
type Session struct {
	analyzer ports.Analyzer
	logger   *slog.Logger

	form      domain.FormInput
	debounced domain.FormInput

	state    domain.LifecycleState
	insight  *domain.Insight
	issued   uint64
	awaiting uint64

	tickets domain.TicketCollection
	lastID  domain.TicketID
}

func NewSession(analyzer ports.Analyzer, seed []domain.Ticket, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	tickets := domain.TicketCollection(slices.Clone(seed))

	return &Session{
		analyzer: analyzer,
		logger:   logger,
		state:    domain.LifecycleIdle,
		tickets:  tickets,
		lastID:   tickets.MaxID(),
	}
}

func (s *Session) EditTitle(title string) {
	s.form.Title = title
}

func (s *Session) EditDescription(description string) {
	s.form.Description = description
}

func (s *Session) Form() domain.FormInput {
	return s.form
}

func (s *Session) Debounced() domain.FormInput {
	return s.debounced
}

func (s *Session) State() domain.LifecycleState {
	return s.state
}

func (s *Session) Insight() (domain.Insight, bool) {
	if s.insight == nil {
		return domain.Insight{}, false
	}
	return *s.insight, true
}

// LatestIssued returns the highest sequence id handed out so far.
func (s *Session) LatestIssued() uint64 {
	return s.issued
}

func (s *Session) Tickets() domain.TicketCollection {
	return slices.Clone(s.tickets)
}

// resetInsight clears the insight and abandons any awaited response.
func (s *Session) resetInsight() {
	s.insight = nil
	s.state = domain.LifecycleIdle
	s.awaiting = 0
}
