package application

import "github.com/bnema/cognisupport/internal/domain"

// SettleTitle records a new debounced title and re-evaluates the trigger
// gate. See recompute.
func (s *Session) SettleTitle(title string) (domain.InsightRequest, bool) {
	s.debounced.Title = title
	return s.recompute()
}

func (s *Session) SettleDescription(description string) (domain.InsightRequest, bool) {
	s.debounced.Description = description
	return s.recompute()
}

// recompute issues a fresh request on every change while the debounced
// values are eligible, and resets the insight as soon as they are not.
func (s *Session) recompute() (domain.InsightRequest, bool) {
	if !domain.Eligible(s.debounced.Title, s.debounced.Description) {
		s.resetInsight()
		return domain.InsightRequest{}, false
	}

	return s.SubmitAnalysis(s.debounced.Title, s.debounced.Description), true
}
