package extract

import (
	"fmt"
	"log/slog"
	"strings"
)

// IDPolicy decides how extracted items are numbered.
type IDPolicy string

const (
	// IDByPosition numbers items 1..n by their position in the returned slice.
	IDByPosition IDPolicy = "position"

	// IDByBlock numbers items by their block's position among all offered
	// blocks, skipped ones included. This is the legacy numbering: after a
	// skipped block, IDs and slice positions diverge.
	IDByBlock IDPolicy = "block"
)

// ParseIDPolicy converts a configuration value into an IDPolicy.
func ParseIDPolicy(s string) (IDPolicy, error) {
	switch p := IDPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case IDByPosition, IDByBlock:
		return p, nil
	case "":
		return IDByPosition, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidIDPolicy, s)
	}
}

// id picks the identifier for a parsed block given how many items were
// accepted before it.
func (p IDPolicy) id(b block, accepted int) int {
	if p == IDByBlock {
		return b.index
	}
	return accepted + 1
}

type options struct {
	logger   *slog.Logger
	idPolicy IDPolicy
}

// Option configures an extractor.
type Option func(*options)

// WithLogger sets the logger used to report skipped blocks.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithIDPolicy sets the numbering policy. The default is IDByPosition.
func WithIDPolicy(policy IDPolicy) Option {
	return func(o *options) {
		o.idPolicy = policy
	}
}

func newOptions(component string, opts []Option) options {
	o := options{
		logger:   slog.Default(),
		idPolicy: IDByPosition,
	}
	for _, opt := range opts {
		opt(&o)
	}
	o.logger = o.logger.With("component", component)
	return o
}
