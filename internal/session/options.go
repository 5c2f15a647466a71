package session

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/scry-study/internal/domain"
	"github.com/phrazzld/scry-study/internal/events"
)

type config struct {
	id            uuid.UUID
	requireAnswer *bool
	logger        *slog.Logger
	emitter       events.EventEmitter
}

// Option configures a Controller.
type Option func(*config)

// WithID sets the session identifier. The transport layer supplies it when
// it tracks sessions; otherwise a random one is generated.
func WithID(id uuid.UUID) Option {
	return func(c *config) {
		c.id = id
	}
}

// WithRequireAnswerToAdvance controls whether Advance needs the current item
// to be answered (quiz) or reviewed (deck) first. Quizzes default to true,
// decks to false.
func WithRequireAnswerToAdvance(require bool) Option {
	return func(c *config) {
		c.requireAnswer = &require
	}
}

// WithLogger sets the logger for transition diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithEmitter sets the emitter notified after each successful operation.
func WithEmitter(emitter events.EventEmitter) Option {
	return func(c *config) {
		c.emitter = emitter
	}
}

// defaultRequireAnswer returns the gating default for a session kind.
func defaultRequireAnswer(kind domain.ItemKind) bool {
	return kind == domain.KindMCQ
}
