package session

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/scry-study/internal/domain"
	"github.com/phrazzld/scry-study/internal/events"
)

// notLoaded is the index reported before the first successful Load.
const notLoaded = -1

// Controller is the state machine of one study session.
type Controller[T domain.Item] struct {
	id            uuid.UUID
	kind          domain.ItemKind
	requireAnswer bool
	logger        *slog.Logger
	emitter       events.EventEmitter

	items []T
	// phase is never PhaseRevealed; that phase is derived from the current item.
	phase Phase
	index int

	// Sparse per-index state: no entry means unanswered, unrevealed or
	// showing the front.
	answers     map[int]domain.OptionLetter
	revealed    map[int]bool
	showingBack map[int]bool
}

// New creates an empty session in PhaseLoading.
func New[T domain.Item](opts ...Option) *Controller[T] {
	var zero T
	kind := zero.Kind()

	cfg := config{logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.id == uuid.Nil {
		cfg.id = uuid.New()
	}
	requireAnswer := defaultRequireAnswer(kind)
	if cfg.requireAnswer != nil {
		requireAnswer = *cfg.requireAnswer
	}

	c := &Controller[T]{
		id:            cfg.id,
		kind:          kind,
		requireAnswer: requireAnswer,
		emitter:       cfg.emitter,
		logger: cfg.logger.With(
			"component", "session_controller",
			"session_id", cfg.id.String(),
			"kind", kind.String()),
	}
	c.clear()
	c.phase = PhaseLoading
	c.index = notLoaded
	return c
}

// NewQuiz creates a multiple-choice session.
func NewQuiz(opts ...Option) *Controller[domain.Question] {
	return New[domain.Question](opts...)
}

// NewDeck creates a flashcard session.
func NewDeck(opts ...Option) *Controller[domain.Flashcard] {
	return New[domain.Flashcard](opts...)
}

// Load replaces the session's items and any previous progress, leaving the
// session Ready at the first item. An empty list is rejected with
// ErrEmptyDataset and the session is left as it was.
func (c *Controller[T]) Load(items []T) error {
	if len(items) == 0 {
		return ErrEmptyDataset
	}

	c.items = make([]T, len(items))
	copy(c.items, items)
	c.clear()
	c.index = 0
	c.phase = PhaseReady

	c.logger.Debug("items loaded", "total", len(c.items))
	c.emit(events.TypeItemsLoaded)
	return nil
}

// SelectAnswer records letter as the answer to the current question and
// reveals it. Only quiz sessions accept answers. The first answer recorded
// for an item is final: later calls for the same item are no-ops.
func (c *Controller[T]) SelectAnswer(letter domain.OptionLetter) error {
	if c.kind != domain.KindMCQ {
		return c.invalid("select answer")
	}
	if !c.phase.interactive() {
		return c.invalid("select answer")
	}

	if _, answered := c.answers[c.index]; answered {
		c.logger.Debug("answer already recorded, ignoring selection",
			"index", c.index,
			"selected", letter.String())
		return nil
	}

	q, ok := any(c.items[c.index]).(domain.Question)
	if !ok || !q.HasOption(letter) {
		return fmt.Errorf("%w: %q", ErrInvalidOption, letter)
	}

	c.answers[c.index] = letter
	c.revealed[c.index] = true
	c.phase = PhaseActive

	c.logger.Debug("answer selected",
		"index", c.index,
		"selected", letter.String(),
		"correct", q.IsCorrect(letter))
	c.emit(events.TypeAnswerSelected)
	return nil
}

// Flip turns the current flashcard over. The first time a card shows its
// back it is marked reviewed, and it stays reviewed until Reset.
func (c *Controller[T]) Flip() error {
	if c.kind != domain.KindFlashcard {
		return c.invalid("flip")
	}
	if !c.phase.interactive() {
		return c.invalid("flip")
	}

	back := !c.showingBack[c.index]
	if back {
		c.showingBack[c.index] = true
		c.revealed[c.index] = true
	} else {
		delete(c.showingBack, c.index)
	}
	c.phase = PhaseActive

	c.logger.Debug("card flipped", "index", c.index, "showing_back", back)
	c.emit(events.TypeCardFlipped)
	return nil
}

// Advance moves to the next item, or completes the session when the current
// item is the last one. When answers are required, the current item must be
// answered (quiz) or reviewed (deck) first, otherwise ErrAnswerRequired.
func (c *Controller[T]) Advance() error {
	if !c.phase.interactive() {
		return c.invalid("advance")
	}
	if c.requireAnswer && !c.revealed[c.index] {
		return ErrAnswerRequired
	}

	if c.index == len(c.items)-1 {
		c.phase = PhaseCompleted
		c.logger.Debug("session completed", "total", len(c.items))
		c.emit(events.TypeCompleted)
		return nil
	}

	c.index++
	c.phase = PhaseActive
	c.logger.Debug("advanced", "index", c.index)
	c.emit(events.TypeAdvanced)
	return nil
}

// Retreat moves to the previous item. On the first item it does nothing.
// From PhaseCompleted it reopens the session one item before the last.
// Recorded answers and revealed flags are kept.
func (c *Controller[T]) Retreat() error {
	if c.phase == PhaseLoading {
		return c.invalid("retreat")
	}

	if c.phase != PhaseCompleted && c.index == 0 {
		return nil
	}

	if c.index > 0 {
		c.index--
	}
	c.phase = PhaseActive

	c.logger.Debug("retreated", "index", c.index)
	c.emit(events.TypeRetreated)
	return nil
}

// Reset clears all answers and revealed flags and returns to the first item
// in PhaseReady. The loaded items are kept.
func (c *Controller[T]) Reset() error {
	if c.phase == PhaseLoading {
		return c.invalid("reset")
	}

	c.clear()
	c.index = 0
	c.phase = PhaseReady

	c.logger.Debug("session reset")
	c.emit(events.TypeReset)
	return nil
}

// clear drops all per-item progress.
func (c *Controller[T]) clear() {
	c.answers = make(map[int]domain.OptionLetter)
	c.revealed = make(map[int]bool)
	c.showingBack = make(map[int]bool)
}

func (c *Controller[T]) invalid(op string) error {
	return fmt.Errorf("%w: %s is not allowed for a %s session in phase %s",
		ErrInvalidTransition, op, c.kind, c.Phase())
}

// emit notifies the emitter of a completed operation. Delivery failures are
// logged; the operation itself has already succeeded.
func (c *Controller[T]) emit(eventType string) {
	if c.emitter == nil {
		return
	}

	event, err := events.NewSessionEvent(c.id, eventType, c.Progress())
	if err != nil {
		c.logger.Error("failed to build session event", "error", err, "event_type", eventType)
		return
	}
	if err := c.emitter.EmitEvent(event); err != nil {
		c.logger.Warn("session event handler failed", "error", err, "event_type", eventType)
	}
}
