package session_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/scry-study/internal/domain"
	"github.com/phrazzld/scry-study/internal/events"
	"github.com/phrazzld/scry-study/internal/session"
	"github.com/phrazzld/scry-study/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadedQuiz(t *testing.T, correct ...domain.OptionLetter) *session.Controller[domain.Question] {
	t.Helper()
	quiz := session.NewQuiz()
	require.NoError(t, quiz.Load(testutils.MustCreateQuestions(t, correct...)))
	return quiz
}

func TestNewControllerStartsLoading(t *testing.T) {
	t.Parallel()

	quiz := session.NewQuiz()
	assert.Equal(t, session.PhaseLoading, quiz.Phase())
	assert.Equal(t, -1, quiz.Index())
	assert.Equal(t, domain.KindMCQ, quiz.Kind())
	assert.True(t, quiz.RequireAnswerToAdvance())
	assert.NotEqual(t, uuid.Nil, quiz.ID())

	_, ok := quiz.Current()
	assert.False(t, ok)

	deck := session.NewDeck()
	assert.Equal(t, domain.KindFlashcard, deck.Kind())
	assert.False(t, deck.RequireAnswerToAdvance())
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("empty dataset is rejected", func(t *testing.T) {
		t.Parallel()

		quiz := session.NewQuiz()
		err := quiz.Load(nil)
		assert.ErrorIs(t, err, session.ErrEmptyDataset)
		assert.Equal(t, session.PhaseLoading, quiz.Phase())
		assert.Equal(t, -1, quiz.Index())

		err = quiz.Load([]domain.Question{})
		assert.ErrorIs(t, err, session.ErrEmptyDataset)
		assert.Equal(t, session.PhaseLoading, quiz.Phase())
	})

	t.Run("empty dataset keeps a loaded session intact", func(t *testing.T) {
		t.Parallel()

		quiz := loadedQuiz(t, "A", "B")
		require.NoError(t, quiz.SelectAnswer("A"))

		assert.ErrorIs(t, quiz.Load(nil), session.ErrEmptyDataset)
		assert.Equal(t, 2, quiz.Len())
		letter, ok := quiz.Answer(0)
		assert.True(t, ok)
		assert.Equal(t, domain.OptionA, letter)
	})

	t.Run("load sets ready at first item", func(t *testing.T) {
		t.Parallel()

		quiz := loadedQuiz(t, "A", "B", "C")
		assert.Equal(t, session.PhaseReady, quiz.Phase())
		assert.Equal(t, 0, quiz.Index())
		assert.Equal(t, 3, quiz.Len())

		current, ok := quiz.Current()
		require.True(t, ok)
		assert.Equal(t, 1, current.ID)
	})

	t.Run("second load fully replaces state", func(t *testing.T) {
		t.Parallel()

		quiz := loadedQuiz(t, "A", "B", "C")
		require.NoError(t, quiz.SelectAnswer("A"))
		require.NoError(t, quiz.Advance())

		require.NoError(t, quiz.Load(testutils.MustCreateQuestions(t, "D")))
		assert.Equal(t, session.PhaseReady, quiz.Phase())
		assert.Equal(t, 0, quiz.Index())
		assert.Equal(t, 1, quiz.Len())
		assert.Empty(t, quiz.Answers())
		assert.False(t, quiz.IsRevealed(0))
	})

	t.Run("loaded items are copied", func(t *testing.T) {
		t.Parallel()

		questions := testutils.MustCreateQuestions(t, "A", "B")
		quiz := session.NewQuiz()
		require.NoError(t, quiz.Load(questions))

		questions[0].Prompt = "mutated"
		assert.NotEqual(t, "mutated", quiz.Items()[0].Prompt)
	})
}

func TestSelectAnswer(t *testing.T) {
	t.Parallel()

	t.Run("records answer and reveals", func(t *testing.T) {
		t.Parallel()

		quiz := loadedQuiz(t, "B", "C")
		require.NoError(t, quiz.SelectAnswer("B"))

		letter, ok := quiz.Answer(0)
		require.True(t, ok)
		assert.Equal(t, domain.OptionB, letter)
		assert.True(t, quiz.IsRevealed(0))
		assert.Equal(t, session.PhaseRevealed, quiz.Phase())
	})

	t.Run("first selection wins", func(t *testing.T) {
		t.Parallel()

		quiz := loadedQuiz(t, "B")
		require.NoError(t, quiz.SelectAnswer("A"))
		require.NoError(t, quiz.SelectAnswer("B"))
		require.NoError(t, quiz.SelectAnswer("B"))

		letter, _ := quiz.Answer(0)
		assert.Equal(t, domain.OptionA, letter)
		assert.Len(t, quiz.Answers(), 1)
	})

	t.Run("unknown letter is rejected", func(t *testing.T) {
		t.Parallel()

		quiz := loadedQuiz(t, "B")
		err := quiz.SelectAnswer("E")
		assert.ErrorIs(t, err, session.ErrInvalidOption)
		_, ok := quiz.Answer(0)
		assert.False(t, ok)
		assert.False(t, quiz.IsRevealed(0))
	})

	t.Run("before load", func(t *testing.T) {
		t.Parallel()

		quiz := session.NewQuiz()
		assert.ErrorIs(t, quiz.SelectAnswer("A"), session.ErrInvalidTransition)
	})

	t.Run("after completion", func(t *testing.T) {
		t.Parallel()

		quiz := loadedQuiz(t, "A")
		require.NoError(t, quiz.SelectAnswer("A"))
		require.NoError(t, quiz.Advance())
		require.Equal(t, session.PhaseCompleted, quiz.Phase())

		assert.ErrorIs(t, quiz.SelectAnswer("B"), session.ErrInvalidTransition)
	})

	t.Run("deck sessions do not take answers", func(t *testing.T) {
		t.Parallel()

		deck := session.NewDeck()
		require.NoError(t, deck.Load(testutils.MustCreateFlashcards(t, 2)))
		assert.ErrorIs(t, deck.SelectAnswer("A"), session.ErrInvalidTransition)
		assert.Empty(t, deck.Answers())
	})
}

func TestAdvance(t *testing.T) {
	t.Parallel()

	t.Run("requires an answer by default", func(t *testing.T) {
		t.Parallel()

		quiz := loadedQuiz(t, "A", "B")
		err := quiz.Advance()
		assert.ErrorIs(t, err, session.ErrAnswerRequired)
		assert.ErrorIs(t, err, session.ErrInvalidTransition)
		assert.Equal(t, 0, quiz.Index())
		assert.Equal(t, session.PhaseReady, quiz.Phase())
	})

	t.Run("ungated quiz advances freely", func(t *testing.T) {
		t.Parallel()

		quiz := session.NewQuiz(session.WithRequireAnswerToAdvance(false))
		require.NoError(t, quiz.Load(testutils.MustCreateQuestions(t, "A", "B")))

		require.NoError(t, quiz.Advance())
		assert.Equal(t, 1, quiz.Index())
		assert.Equal(t, session.PhaseActive, quiz.Phase())
		require.NoError(t, quiz.Advance())
		assert.Equal(t, session.PhaseCompleted, quiz.Phase())
		assert.Equal(t, 1, quiz.Index())
	})

	t.Run("completed session cannot advance", func(t *testing.T) {
		t.Parallel()

		quiz := loadedQuiz(t, "A")
		require.NoError(t, quiz.SelectAnswer("A"))
		require.NoError(t, quiz.Advance())
		assert.ErrorIs(t, quiz.Advance(), session.ErrInvalidTransition)
	})

	t.Run("before load", func(t *testing.T) {
		t.Parallel()

		assert.ErrorIs(t, session.NewDeck().Advance(), session.ErrInvalidTransition)
	})
}

func TestRetreatPreservesAnswers(t *testing.T) {
	t.Parallel()

	quiz := loadedQuiz(t, "A", "B", "C")
	for _, l := range []domain.OptionLetter{"A", "D", "C"} {
		require.NoError(t, quiz.SelectAnswer(l))
		require.NoError(t, quiz.Advance())
	}
	require.Equal(t, session.PhaseCompleted, quiz.Phase())
	require.Equal(t, 2, quiz.Index())

	require.NoError(t, quiz.Retreat())
	assert.Equal(t, 1, quiz.Index())
	require.NoError(t, quiz.Retreat())
	assert.Equal(t, 0, quiz.Index())

	letter, ok := quiz.Answer(0)
	require.True(t, ok)
	assert.Equal(t, domain.OptionA, letter)
	assert.True(t, quiz.IsRevealed(0))
	assert.Equal(t, session.PhaseRevealed, quiz.Phase())

	before := quiz.Snapshot()
	require.NoError(t, quiz.Advance())
	require.NoError(t, quiz.Retreat())
	assert.Equal(t, before, quiz.Snapshot(), "navigating away and back must reproduce the same view")
	assert.Len(t, quiz.Answers(), 3)
}

func TestRetreat(t *testing.T) {
	t.Parallel()

	t.Run("first item is a no-op", func(t *testing.T) {
		t.Parallel()

		quiz := loadedQuiz(t, "A", "B")
		require.NoError(t, quiz.Retreat())
		assert.Equal(t, 0, quiz.Index())
		assert.Equal(t, session.PhaseReady, quiz.Phase())
	})

	t.Run("single item completed session reopens", func(t *testing.T) {
		t.Parallel()

		quiz := loadedQuiz(t, "A")
		require.NoError(t, quiz.SelectAnswer("A"))
		require.NoError(t, quiz.Advance())
		require.NoError(t, quiz.Retreat())
		assert.Equal(t, 0, quiz.Index())
		assert.Equal(t, session.PhaseRevealed, quiz.Phase())
	})

	t.Run("before load", func(t *testing.T) {
		t.Parallel()

		assert.ErrorIs(t, session.NewQuiz().Retreat(), session.ErrInvalidTransition)
	})
}

func TestReset(t *testing.T) {
	t.Parallel()

	quiz := loadedQuiz(t, "A", "B")
	require.NoError(t, quiz.SelectAnswer("A"))
	require.NoError(t, quiz.Advance())
	require.NoError(t, quiz.SelectAnswer("C"))
	require.NoError(t, quiz.Advance())
	require.Equal(t, session.PhaseCompleted, quiz.Phase())

	require.NoError(t, quiz.Reset())
	assert.Equal(t, session.PhaseReady, quiz.Phase())
	assert.Equal(t, 0, quiz.Index())
	assert.Empty(t, quiz.Answers())
	assert.False(t, quiz.IsRevealed(0))
	assert.False(t, quiz.IsRevealed(1))
	assert.Equal(t, 2, quiz.Len())

	assert.ErrorIs(t, session.NewQuiz().Reset(), session.ErrInvalidTransition)
}

func TestFlip(t *testing.T) {
	t.Parallel()

	t.Run("reviewed flag is monotone", func(t *testing.T) {
		t.Parallel()

		deck := session.NewDeck()
		require.NoError(t, deck.Load(testutils.MustCreateFlashcards(t, 2)))
		require.False(t, deck.IsRevealed(0))

		require.NoError(t, deck.Flip())
		assert.True(t, deck.IsRevealed(0))
		assert.True(t, deck.Snapshot().ShowingBack)
		assert.Equal(t, session.PhaseRevealed, deck.Phase())

		require.NoError(t, deck.Flip())
		assert.True(t, deck.IsRevealed(0))
		assert.False(t, deck.Snapshot().ShowingBack)
		assert.Equal(t, session.PhaseActive, deck.Phase())

		require.NoError(t, deck.Flip())
		assert.True(t, deck.IsRevealed(0))
		assert.Equal(t, 1, deck.Progress().RevealedCount)
	})

	t.Run("card side survives navigation", func(t *testing.T) {
		t.Parallel()

		deck := session.NewDeck()
		require.NoError(t, deck.Load(testutils.MustCreateFlashcards(t, 2)))
		require.NoError(t, deck.Flip())
		require.NoError(t, deck.Advance())
		assert.False(t, deck.Snapshot().ShowingBack)
		require.NoError(t, deck.Retreat())
		assert.True(t, deck.Snapshot().ShowingBack)
	})

	t.Run("gated deck needs a review to advance", func(t *testing.T) {
		t.Parallel()

		deck := session.NewDeck(session.WithRequireAnswerToAdvance(true))
		require.NoError(t, deck.Load(testutils.MustCreateFlashcards(t, 2)))
		assert.ErrorIs(t, deck.Advance(), session.ErrAnswerRequired)
		require.NoError(t, deck.Flip())
		require.NoError(t, deck.Flip())
		assert.NoError(t, deck.Advance())
	})

	t.Run("quiz sessions cannot flip", func(t *testing.T) {
		t.Parallel()

		quiz := loadedQuiz(t, "A")
		assert.ErrorIs(t, quiz.Flip(), session.ErrInvalidTransition)
		assert.False(t, quiz.IsRevealed(0))
	})

	t.Run("before load", func(t *testing.T) {
		t.Parallel()

		assert.ErrorIs(t, session.NewDeck().Flip(), session.ErrInvalidTransition)
	})
}

func TestSnapshot(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	quiz := session.NewQuiz(session.WithID(id))
	require.NoError(t, quiz.Load(testutils.MustCreateQuestions(t, "C", "D")))
	require.NoError(t, quiz.SelectAnswer("B"))

	s := quiz.Snapshot()
	assert.Equal(t, id, s.SessionID)
	assert.Equal(t, domain.KindMCQ, s.Kind)
	assert.Equal(t, session.PhaseRevealed, s.Phase)
	assert.Equal(t, 0, s.Index)
	assert.Equal(t, 2, s.Total)
	assert.Equal(t, 1, s.AnsweredCount)
	assert.Equal(t, 1, s.Current.ID)
	assert.Equal(t, domain.OptionB, s.Answer)
	assert.True(t, s.Revealed)
	assert.True(t, s.RequireAnswer)

	answers := quiz.Answers()
	answers[1] = "A"
	_, ok := quiz.Answer(1)
	assert.False(t, ok, "Answers must return a copy")
}

func TestControllerEmitsEvents(t *testing.T) {
	t.Parallel()

	logger, _ := testutils.NewTestLogger()
	emitter := events.NewInMemoryEventEmitter(logger)
	var seen []*events.SessionEvent
	emitter.RegisterHandler(events.HandlerFunc(func(e *events.SessionEvent) error {
		seen = append(seen, e)
		return nil
	}))

	quiz := session.NewQuiz(session.WithEmitter(emitter), session.WithLogger(logger))
	require.NoError(t, quiz.Load(testutils.MustCreateQuestions(t, "A", "B")))
	require.NoError(t, quiz.SelectAnswer("A"))
	require.NoError(t, quiz.Advance())
	require.NoError(t, quiz.SelectAnswer("B"))
	require.NoError(t, quiz.Advance())
	require.NoError(t, quiz.Retreat())
	require.NoError(t, quiz.Reset())
	assert.Error(t, quiz.Flip())

	types := make([]string, 0, len(seen))
	for _, e := range seen {
		types = append(types, e.Type)
		assert.Equal(t, quiz.ID(), e.SessionID)
	}
	assert.Equal(t, []string{
		events.TypeItemsLoaded,
		events.TypeAnswerSelected,
		events.TypeAdvanced,
		events.TypeAnswerSelected,
		events.TypeCompleted,
		events.TypeRetreated,
		events.TypeReset,
	}, types)

	var progress session.Progress
	require.NoError(t, seen[4].UnmarshalPayload(&progress))
	assert.Equal(t, session.PhaseCompleted, progress.Phase)
	assert.Equal(t, 2, progress.AnsweredCount)
}

func TestControllerLogsFailedEventDelivery(t *testing.T) {
	t.Parallel()

	logger, handler := testutils.NewTestLogger()
	emitter := events.NewInMemoryEventEmitter(logger)
	emitter.RegisterHandler(events.HandlerFunc(func(*events.SessionEvent) error {
		return assert.AnError
	}))

	deck := session.NewDeck(session.WithEmitter(emitter), session.WithLogger(logger))
	require.NoError(t, deck.Load(testutils.MustCreateFlashcards(t, 1)), "handler failures must not fail the operation")

	entries := handler.EntriesWithMessage("session event handler failed")
	require.Len(t, entries, 1)
	assert.Equal(t, "session_controller", entries[0]["component"])
	assert.Equal(t, events.TypeItemsLoaded, entries[0]["event_type"])
}
