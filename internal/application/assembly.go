package application

import "github.com/bnema/cognisupport/internal/domain"

// SubmitTicket turns the current form and insight into a new ticket at the
// head of the collection, then clears the form, its debounced copy and the
// insight. An incomplete form is ignored.
func (s *Session) SubmitTicket() (domain.Ticket, bool) {
	if !s.form.Complete() {
		return domain.Ticket{}, false
	}

	ticket := domain.Ticket{
		ID:       s.nextTicketID(),
		Title:    s.form.Title,
		Category: domain.UnassignedCategory,
		Priority: domain.PriorityLow,
		Status:   domain.StatusNew,
	}
	if s.insight != nil {
		ticket.Category = s.insight.Category
		ticket.Priority = s.insight.Priority
	}

	s.tickets = s.tickets.Prepend(ticket)
	s.form = domain.FormInput{}
	s.debounced = domain.FormInput{}
	s.resetInsight()

	return ticket, true
}

func (s *Session) nextTicketID() domain.TicketID {
	s.lastID++
	for s.tickets.Contains(s.lastID) {
		s.lastID++
	}
	return s.lastID
}
