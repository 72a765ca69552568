package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCount is returned when a negative batch size is requested.
	ErrInvalidCount = errors.New("employee count must not be negative")

	// ErrIDSpaceExhausted is returned when no unused employee id can be drawn,
	// either because the batch is larger than IDSpace or the draw limit was hit.
	ErrIDSpaceExhausted = errors.New("could not draw an unused employee id")
)

// GenerationError reports a batch that could not be completed.
type GenerationError struct {
	Generated int
	Requested int
	Err       error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generate employees: stopped after %d of %d: %v", e.Generated, e.Requested, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
