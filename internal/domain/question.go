package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Question-specific validation errors
var (
	// ErrQuestionPromptEmpty is returned when a question has no prompt text.
	ErrQuestionPromptEmpty = errors.New("question prompt cannot be empty")

	// ErrQuestionOptionSet is returned when the options are not exactly A, B, C and D.
	ErrQuestionOptionSet = errors.New("question must have exactly the options A, B, C and D")

	// ErrQuestionOptionEmpty is returned when an option has no text.
	ErrQuestionOptionEmpty = errors.New("question option text cannot be empty")

	// ErrQuestionCorrectOption is returned when the correct option is not one of the options.
	ErrQuestionCorrectOption = errors.New("correct option must be one of the question's options")
)

// OptionLetter identifies one of the four answer options of a question.
type OptionLetter string

// The four option letters, in display order.
const (
	OptionA OptionLetter = "A"
	OptionB OptionLetter = "B"
	OptionC OptionLetter = "C"
	OptionD OptionLetter = "D"
)

// OptionLetters returns the option letters in display order.
func OptionLetters() []OptionLetter {
	return []OptionLetter{OptionA, OptionB, OptionC, OptionD}
}

// Valid reports whether l is one of A, B, C or D.
func (l OptionLetter) Valid() bool {
	switch l {
	case OptionA, OptionB, OptionC, OptionD:
		return true
	default:
		return false
	}
}

// String returns the letter as plain text.
func (l OptionLetter) String() string {
	return string(l)
}

// ParseOptionLetter converts user or generator input such as "b" or " C "
// into an OptionLetter.
func ParseOptionLetter(s string) (OptionLetter, error) {
	l := OptionLetter(strings.ToUpper(strings.TrimSpace(s)))
	if !l.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidOptionLetter, s)
	}
	return l, nil
}

// Question is a multiple-choice question with exactly four options.
type Question struct {
	ID            int                     `json:"id"             yaml:"id"             validate:"gt=0"`
	Prompt        string                  `json:"prompt"         yaml:"prompt"         validate:"required"`
	Options       map[OptionLetter]string `json:"options"        yaml:"options"        validate:"len=4,dive,keys,option_letter,endkeys,required"`
	CorrectOption OptionLetter            `json:"correct_option" yaml:"correct_option" validate:"option_letter"`
	Explanation   string                  `json:"explanation"    yaml:"explanation"`
}

// NewQuestion creates a Question from already-extracted parts.
// The options map is copied. Returns an error if validation fails.
func NewQuestion(
	id int,
	prompt string,
	options map[OptionLetter]string,
	correct OptionLetter,
	explanation string,
) (Question, error) {
	opts := make(map[OptionLetter]string, len(options))
	for l, text := range options {
		opts[l] = strings.TrimSpace(text)
	}

	q := Question{
		ID:            id,
		Prompt:        strings.TrimSpace(prompt),
		Options:       opts,
		CorrectOption: correct,
		Explanation:   strings.TrimSpace(explanation),
	}

	if err := q.Validate(); err != nil {
		return Question{}, err
	}
	return q, nil
}

// Validate checks the Question invariants.
// Returns an error if any field fails validation.
func (q Question) Validate() error {
	if q.ID <= 0 {
		return ErrInvalidID
	}

	if strings.TrimSpace(q.Prompt) == "" {
		return ErrQuestionPromptEmpty
	}

	if len(q.Options) != len(OptionLetters()) {
		return ErrQuestionOptionSet
	}
	for _, l := range OptionLetters() {
		text, ok := q.Options[l]
		if !ok {
			return ErrQuestionOptionSet
		}
		if strings.TrimSpace(text) == "" {
			return fmt.Errorf("%w: option %s", ErrQuestionOptionEmpty, l)
		}
	}

	if _, ok := q.Options[q.CorrectOption]; !ok {
		return ErrQuestionCorrectOption
	}

	return validateStruct(q)
}

// Kind implements Item.
func (q Question) Kind() ItemKind {
	return KindMCQ
}

// ItemID implements Item.
func (q Question) ItemID() int {
	return q.ID
}

// HasOption reports whether l is one of the question's option keys.
func (q Question) HasOption(l OptionLetter) bool {
	_, ok := q.Options[l]
	return ok
}

// IsCorrect reports whether l is the correct option.
func (q Question) IsCorrect(l OptionLetter) bool {
	return l == q.CorrectOption
}
