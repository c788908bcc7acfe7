package models

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation covers malformed input. Surfaced directly to the
	// caller, never retried.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidDates is the date-order validation failure.
	ErrInvalidDates = fmt.Errorf("%w: end date must be after start date", ErrValidation)

	ErrInvalidID = errors.New("invalid identifier")

	ErrBookingNotFound     = errors.New("booking not found")
	ErrDestinationNotFound = errors.New("destination not found")

	// ErrForbidden means the record exists but belongs to someone else.
	// Kept distinct from not-found so the two are never conflated.
	ErrForbidden = errors.New("not authorized to access this booking")

	// ErrInvalidState marks an illegal lifecycle transition.
	ErrInvalidState     = errors.New("invalid booking state")
	ErrAlreadyCancelled = fmt.Errorf("%w: booking is already cancelled", ErrInvalidState)
	ErrCancelCompleted  = fmt.Errorf("%w: cannot cancel a completed booking", ErrInvalidState)

	// ErrNotImplemented signals a hard capability gap, not a transient fault.
	ErrNotImplemented = errors.New("not implemented yet")
)
