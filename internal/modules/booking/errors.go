package booking

import (
	"errors"
	"fmt"
	"time"

	"bookhub/internal/domain"
)

var (
	ErrInvalidTimeRange    = errors.New("end time must be after start time")
	ErrResourceNotFound    = errors.New("resource not found")
	ErrResourceUnavailable = errors.New("resource is not active")
	ErrNotFound            = errors.New("booking not found")
	ErrForbidden           = errors.New("forbidden")
)

// ConflictError carries the interval of the booking that blocked a create or
// amend, so the caller can see what it collided with.
type ConflictError struct {
	Conflict domain.Interval
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("resource already booked for [%s, %s)",
		e.Conflict.Start.Format(time.RFC3339),
		e.Conflict.End.Format(time.RFC3339))
}
