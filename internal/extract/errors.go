package extract

import (
	"errors"
	"fmt"
)

// Errors returned by the extractors.
var (
	// ErrEmptyResult is returned when no block of the input could be parsed.
	// Callers treat it as terminal and ask for the text to be generated again.
	ErrEmptyResult = errors.New("no study items could be extracted")

	// ErrEmptyInput is returned for blank input. It matches ErrEmptyResult.
	ErrEmptyInput = fmt.Errorf("%w: input is blank", ErrEmptyResult)

	// ErrInvalidIDPolicy is returned when an ID policy name is not recognised.
	ErrInvalidIDPolicy = errors.New("invalid ID policy")
)

// Per-block errors. They are recorded in a Report and never returned from
// Parse; every cause wraps ErrBlockMalformed.
var (
	// ErrBlockMalformed is the common cause of every skipped block.
	ErrBlockMalformed = errors.New("malformed block")

	// ErrMissingPrompt is recorded when a block has no emphasised prompt after its number.
	ErrMissingPrompt = fmt.Errorf("%w: missing emphasised prompt", ErrBlockMalformed)

	// ErrOptionSet is recorded when the lettered options are not exactly A, B, C and D.
	ErrOptionSet = fmt.Errorf("%w: options must be exactly (A) to (D)", ErrBlockMalformed)

	// ErrMissingCorrectAnswer is recorded when the correct answer marker is absent.
	ErrMissingCorrectAnswer = fmt.Errorf("%w: missing correct answer marker", ErrBlockMalformed)

	// ErrMissingAnswer is recorded when a flashcard block has no answer marker.
	ErrMissingAnswer = fmt.Errorf("%w: missing answer marker", ErrBlockMalformed)
)
