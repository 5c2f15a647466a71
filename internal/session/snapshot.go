package session

import (
	"maps"

	"github.com/google/uuid"
	"github.com/phrazzld/scry-study/internal/domain"
)

// Progress is the kind-independent part of a session's state. It is also
// the payload of every session event.
type Progress struct {
	SessionID     uuid.UUID       `json:"session_id"`
	Kind          domain.ItemKind `json:"kind"`
	Phase         Phase           `json:"phase"`
	Index         int             `json:"index"`
	Total         int             `json:"total"`
	AnsweredCount int             `json:"answered_count"`
	RevealedCount int             `json:"revealed_count"`
}

// Snapshot is a read-only view of a session, enough to render the current
// item and the user's progress.
type Snapshot[T domain.Item] struct {
	Progress

	// Current is the item at Index; zero before Load.
	Current T
	// Answer is the letter recorded for the current item, empty if none.
	Answer domain.OptionLetter
	// Revealed reports whether the current item's answer or back has been
	// shown at least once.
	Revealed bool
	// ShowingBack reports whether the current flashcard is turned over.
	ShowingBack bool
	// RequireAnswer mirrors the controller's advance gating.
	RequireAnswer bool
}

// ID returns the session identifier.
func (c *Controller[T]) ID() uuid.UUID {
	return c.id
}

// Kind returns the item kind the session runs over.
func (c *Controller[T]) Kind() domain.ItemKind {
	return c.kind
}

// Phase returns the current phase. A Ready or Active session whose current
// item has its answer or back face showing reports PhaseRevealed.
func (c *Controller[T]) Phase() Phase {
	if c.phase.interactive() && c.currentShowsAnswer() {
		return PhaseRevealed
	}
	return c.phase
}

// Index returns the current position, or -1 before Load.
func (c *Controller[T]) Index() int {
	return c.index
}

// Len returns the number of loaded items.
func (c *Controller[T]) Len() int {
	return len(c.items)
}

// Items returns a copy of the loaded items.
func (c *Controller[T]) Items() []T {
	items := make([]T, len(c.items))
	copy(items, c.items)
	return items
}

// Current returns the item at the current index, or false before Load.
func (c *Controller[T]) Current() (T, bool) {
	if c.phase == PhaseLoading {
		var zero T
		return zero, false
	}
	return c.items[c.index], true
}

// Answers returns a copy of the recorded answers keyed by item index.
// Indices without an entry are unanswered.
func (c *Controller[T]) Answers() map[int]domain.OptionLetter {
	return maps.Clone(c.answers)
}

// Answer returns the answer recorded for item i, if any.
func (c *Controller[T]) Answer(i int) (domain.OptionLetter, bool) {
	letter, ok := c.answers[i]
	return letter, ok
}

// IsRevealed reports whether item i has had its answer or back shown.
func (c *Controller[T]) IsRevealed(i int) bool {
	return c.revealed[i]
}

// RequireAnswerToAdvance reports whether Advance is gated on the current item.
func (c *Controller[T]) RequireAnswerToAdvance() bool {
	return c.requireAnswer
}

// Progress returns the kind-independent progress view.
func (c *Controller[T]) Progress() Progress {
	return Progress{
		SessionID:     c.id,
		Kind:          c.kind,
		Phase:         c.Phase(),
		Index:         c.index,
		Total:         len(c.items),
		AnsweredCount: len(c.answers),
		RevealedCount: len(c.revealed),
	}
}

// Snapshot returns a read-only view of the session.
func (c *Controller[T]) Snapshot() Snapshot[T] {
	s := Snapshot[T]{
		Progress:      c.Progress(),
		RequireAnswer: c.requireAnswer,
	}
	if current, ok := c.Current(); ok {
		s.Current = current
		s.Answer = c.answers[c.index]
		s.Revealed = c.revealed[c.index]
		s.ShowingBack = c.showingBack[c.index]
	}
	return s
}

// currentShowsAnswer reports whether the current item's answer is on screen:
// an answered question or a turned-over card.
func (c *Controller[T]) currentShowsAnswer() bool {
	if c.kind == domain.KindMCQ {
		_, answered := c.answers[c.index]
		return answered
	}
	return c.showingBack[c.index]
}
