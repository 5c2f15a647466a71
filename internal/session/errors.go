package session

import (
	"errors"
	"fmt"
)

// Errors returned by Controller operations. Each one leaves the session
// state unchanged.
var (
	// ErrEmptyDataset is returned when Load is called with no items.
	ErrEmptyDataset = errors.New("cannot load an empty item list")

	// ErrInvalidTransition is returned when an operation is not defined for
	// the session's current phase or item kind.
	ErrInvalidTransition = errors.New("invalid session transition")

	// ErrAnswerRequired is returned by Advance when the session requires the
	// current item to be answered first. It matches ErrInvalidTransition.
	ErrAnswerRequired = fmt.Errorf("%w: current item must be answered before advancing", ErrInvalidTransition)

	// ErrInvalidOption is returned when a selected letter is not one of the
	// current question's options.
	ErrInvalidOption = errors.New("option is not offered by the current question")
)
