package domain

import (
	"errors"
	"strings"
)

// Flashcard-specific validation errors
var (
	// ErrFlashcardFrontEmpty is returned when a flashcard has no front text.
	ErrFlashcardFrontEmpty = errors.New("flashcard front cannot be empty")
)

// Flashcard is a two-sided study card. The back may span several lines and
// may be empty; rendering a placeholder for an empty back is up to the caller.
type Flashcard struct {
	ID       int    `json:"id"                 yaml:"id"                 validate:"gt=0"`
	Front    string `json:"front"              yaml:"front"              validate:"required"`
	Back     string `json:"back"               yaml:"back"`
	Category string `json:"category,omitempty" yaml:"category,omitempty"`
}

// NewFlashcard creates a Flashcard. Front and category are trimmed, the back
// only loses leading and trailing whitespace so inner line breaks survive.
// Returns an error if validation fails.
func NewFlashcard(id int, front, back, category string) (Flashcard, error) {
	card := Flashcard{
		ID:       id,
		Front:    strings.TrimSpace(front),
		Back:     strings.TrimSpace(back),
		Category: strings.TrimSpace(category),
	}

	if err := card.Validate(); err != nil {
		return Flashcard{}, err
	}
	return card, nil
}

// Validate checks the Flashcard invariants.
func (c Flashcard) Validate() error {
	if c.ID <= 0 {
		return ErrInvalidID
	}

	if strings.TrimSpace(c.Front) == "" {
		return ErrFlashcardFrontEmpty
	}

	return validateStruct(c)
}

// Kind implements Item.
func (c Flashcard) Kind() ItemKind {
	return KindFlashcard
}

// ItemID implements Item.
func (c Flashcard) ItemID() int {
	return c.ID
}

// HasBack reports whether the card carries any answer text.
func (c Flashcard) HasBack() bool {
	return c.Back != ""
}
