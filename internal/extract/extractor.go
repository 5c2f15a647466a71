package extract

import (
	"fmt"
	"strings"
)

// blockParser builds one item from a block, using id as its identifier.
type blockParser[T any] func(b block, id int) (T, error)

// run applies parse to every block of raw, skipping the ones it rejects.
// The returned slice is never nil.
func run[T any](raw string, o options, kind string, parse blockParser[T]) ([]T, *Report, error) {
	report := &Report{}
	items := make([]T, 0)

	if strings.TrimSpace(raw) == "" {
		o.logger.Warn("no text to extract from", "kind", kind)
		return items, report, ErrEmptyInput
	}

	blocks := splitBlocks(raw)
	report.Offered = len(blocks)

	for _, b := range blocks {
		item, err := parse(b, o.idPolicy.id(b, len(items)))
		if err != nil {
			report.Skipped = append(report.Skipped, BlockError{Index: b.index, Reason: err})
			o.logger.Debug("skipping malformed block",
				"kind", kind,
				"block", b.index,
				"reason", err.Error())
			continue
		}
		items = append(items, item)
	}
	report.Parsed = len(items)

	if len(items) == 0 {
		o.logger.Warn("extraction produced no items",
			"kind", kind,
			"offered", report.Offered)
		return items, report, fmt.Errorf("%w: %d blocks offered, none parsed", ErrEmptyResult, report.Offered)
	}

	o.logger.Debug("extracted study items",
		"kind", kind,
		"offered", report.Offered,
		"parsed", report.Parsed,
		"skipped", len(report.Skipped))

	return items, report, nil
}

// malformed folds a domain validation failure into ErrBlockMalformed.
func malformed(err error) error {
	return fmt.Errorf("%w: %w", ErrBlockMalformed, err)
}
