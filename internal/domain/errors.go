package domain

import "errors"

// All conditions below are local and recoverable: they are returned to
// the caller for rendering, never treated as fatal.
var (
	ErrNotFound          = errors.New("not found")
	ErrFetchFailed       = errors.New("flight catalog fetch failed")
	ErrSeatUnavailable   = errors.New("seat is unavailable")
	ErrInvalidSeat       = errors.New("seat id is not on the seat map")
	ErrNoSeatSelected    = errors.New("no seat selected")
	ErrSeatRequired      = errors.New("a seat must be chosen before confirming")
	ErrInvalidPassengers = errors.New("passenger count must be at least 1")
	ErrWorkflowFinished  = errors.New("booking workflow already finished")
	ErrStatusFinal       = errors.New("booking status is final")
)
