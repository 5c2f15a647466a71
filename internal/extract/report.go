package extract

import "fmt"

// BlockError records why a block was skipped.
type BlockError struct {
	// Index is the block's 1-based position among all offered blocks.
	Index int
	// Reason wraps ErrBlockMalformed.
	Reason error
}

// Error implements error.
func (e BlockError) Error() string {
	return fmt.Sprintf("block %d: %v", e.Index, e.Reason)
}

// Unwrap exposes the reason to errors.Is.
func (e BlockError) Unwrap() error {
	return e.Reason
}

// Report summarises one extraction run.
type Report struct {
	// Offered is the number of blocks found in the input.
	Offered int `json:"offered" yaml:"offered"`
	// Parsed is the number of blocks that produced an item.
	Parsed int `json:"parsed" yaml:"parsed"`
	// Skipped lists the blocks that were dropped, in input order.
	Skipped []BlockError `json:"-" yaml:"-"`
}
