package domain

import "errors"

var (
	ErrMalformedInsight = errors.New("malformed insight")
	ErrAnalysisStatus   = errors.New("unexpected analysis status")
	ErrUnknownPriority  = errors.New("unknown priority")
	ErrUnknownStatus    = errors.New("unknown status")
	ErrInvalidTicket    = errors.New("invalid ticket")
)
