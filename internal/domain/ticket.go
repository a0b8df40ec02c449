package domain

import (
	"fmt"
	"strings"
)

type TicketID int64

type Status string

const (
	StatusNew        Status = "New"
	StatusOpen       Status = "Open"
	StatusInProgress Status = "In Progress"
	StatusResolved   Status = "Resolved"
	StatusClosed     Status = "Closed"
)

func ParseStatus(raw string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "new":
		return StatusNew, nil
	case "open":
		return StatusOpen, nil
	case "in progress", "in_progress":
		return StatusInProgress, nil
	case "resolved":
		return StatusResolved, nil
	case "closed":
		return StatusClosed, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, raw)
	}
}

// UnassignedCategory is used when a ticket is submitted without a resolved insight.
const UnassignedCategory = "Unassigned"

type Ticket struct {
	ID       TicketID
	Title    string
	Category string
	Priority Priority
	Status   Status
}

func (t Ticket) Validate() error {
	if t.ID <= 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidTicket)
	}
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidTicket)
	}
	if _, err := ParsePriority(string(t.Priority)); err != nil {
		return err
	}
	if _, err := ParseStatus(string(t.Status)); err != nil {
		return err
	}

	return nil
}

// TicketCollection is ordered newest first.
type TicketCollection []Ticket

func (c TicketCollection) Prepend(ticket Ticket) TicketCollection {
	next := make(TicketCollection, 0, len(c)+1)
	next = append(next, ticket)
	return append(next, c...)
}

func (c TicketCollection) MaxID() TicketID {
	var max TicketID
	for _, ticket := range c {
		if ticket.ID > max {
			max = ticket.ID
		}
	}
	return max
}

func (c TicketCollection) Contains(id TicketID) bool {
	for _, ticket := range c {
		if ticket.ID == id {
			return true
		}
	}
	return false
}
