package domain

import (
	"fmt"
	"strings"
)

type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// ParsePriority accepts the three analysis priorities, case-insensitively.
func ParsePriority(raw string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "low":
		return PriorityLow, nil
	case "medium":
		return PriorityMedium, nil
	case "high":
		return PriorityHigh, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPriority, raw)
	}
}

type Insight struct {
	Category   string
	Priority   Priority
	Confidence string
}

func (i Insight) Validate() error {
	if strings.TrimSpace(i.Category) == "" {
		return fmt.Errorf("%w: category is empty", ErrMalformedInsight)
	}
	if _, err := ParsePriority(string(i.Priority)); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedInsight, err)
	}

	return nil
}

// RoutingTeam names the team a ticket with this insight is routed to.
func (i Insight) RoutingTeam() string {
	return i.Category + " Team"
}

type FormInput struct {
	Title       string
	Description string
}

func (f FormInput) Complete() bool {
	return f.Title != "" && f.Description != ""
}

func (f FormInput) Empty() bool {
	return f.Title == "" && f.Description == ""
}

// InsightRequest is one triggered analysis attempt. Sequence is the only
// guard against stale responses.
type InsightRequest struct {
	Title       string
	Description string
	Sequence    uint64
}

type LifecycleState int

const (
	LifecycleIdle LifecycleState = iota
	LifecycleAnalyzing
	LifecycleResolved
	LifecycleFailed
)

func (s LifecycleState) String() string {
	switch s {
	case LifecycleIdle:
		return "idle"
	case LifecycleAnalyzing:
		return "analyzing"
	case LifecycleResolved:
		return "resolved"
	case LifecycleFailed:
		return "failed"
	default:
		return fmt.Sprintf("lifecycle(%d)", int(s))
	}
}
