package testutils

import (
	"fmt"
	"testing"

	"github.com/phrazzld/scry-study/internal/domain"
	"github.com/stretchr/testify/require"
)

// MustCreateQuestion builds a valid question numbered id whose correct
// option is correct. Option texts are derived from the id.
func MustCreateQuestion(t *testing.T, id int, correct domain.OptionLetter) domain.Question {
	t.Helper()

	options := make(map[domain.OptionLetter]string, 4)
	for _, l := range domain.OptionLetters() {
		options[l] = fmt.Sprintf("Option %s for question %d", l, id)
	}

	q, err := domain.NewQuestion(id, fmt.Sprintf("Question %d?", id), options, correct, "Because.")
	require.NoError(t, err, "Failed to create test question")
	return q
}

// MustCreateQuestions builds one question per letter, numbered from 1.
func MustCreateQuestions(t *testing.T, correct ...domain.OptionLetter) []domain.Question {
	t.Helper()

	questions := make([]domain.Question, 0, len(correct))
	for i, l := range correct {
		questions = append(questions, MustCreateQuestion(t, i+1, l))
	}
	return questions
}

// MustCreateFlashcards builds n valid flashcards numbered from 1.
func MustCreateFlashcards(t *testing.T, n int) []domain.Flashcard {
	t.Helper()

	cards := make([]domain.Flashcard, 0, n)
	for i := 1; i <= n; i++ {
		card, err := domain.NewFlashcard(i, fmt.Sprintf("Front %d", i), fmt.Sprintf("Back %d", i), "")
		require.NoError(t, err, "Failed to create test flashcard")
		cards = append(cards, card)
	}
	return cards
}
