package extract

import (
	"regexp"
	"strings"

	"github.com/phrazzld/scry-study/internal/domain"
)

var (
	// answerMarker matches the "**Answer:**" label that opens a card's back.
	answerMarker = regexp.MustCompile(`\*\*Answer:\*\*`)

	// categoryMarker matches "**Category: text**" and captures the text.
	categoryMarker = regexp.MustCompile(`\*\*Category:[ \t]*([^\n*]*?)[ \t]*\*\*`)
)

// FlashcardExtractor parses flashcard text into cards.
//
// A block looks like:
//
//	Text before the first block is ignored.
//
//	1. **What is the main concept?**
//	**Category: Basics**
//	**Answer:** The answer, which may run over
//
//	several paragraphs.
type FlashcardExtractor struct {
	opts options
}

// NewFlashcardExtractor creates a FlashcardExtractor.
func NewFlashcardExtractor(opts ...Option) *FlashcardExtractor {
	return &FlashcardExtractor{opts: newOptions("flashcard_extractor", opts)}
}

// Parse returns the cards of every well-formed block in input order.
// It returns ErrEmptyResult (or ErrEmptyInput) when nothing could be parsed.
func (e *FlashcardExtractor) Parse(raw string) ([]domain.Flashcard, error) {
	cards, _, err := e.ParseWithReport(raw)
	return cards, err
}

// ParseWithReport is Parse plus a Report of offered and skipped blocks.
func (e *FlashcardExtractor) ParseWithReport(raw string) ([]domain.Flashcard, *Report, error) {
	return run(raw, e.opts, domain.KindFlashcard.String(), parseFlashcardBlock)
}

// ParseFlashcards parses raw with a default FlashcardExtractor.
func ParseFlashcards(raw string) ([]domain.Flashcard, error) {
	return NewFlashcardExtractor().Parse(raw)
}

func parseFlashcardBlock(b block, id int) (domain.Flashcard, error) {
	front, ok := b.prompt()
	if !ok || strings.TrimSpace(front) == "" {
		return domain.Flashcard{}, ErrMissingPrompt
	}

	rest := b.afterPrompt()
	loc := answerMarker.FindStringIndex(rest)
	if loc == nil {
		return domain.Flashcard{}, ErrMissingAnswer
	}

	var category string
	if m := categoryMarker.FindStringSubmatch(b.text); m != nil {
		category = m[1]
	}

	// A category label written after the answer is not part of the back.
	back := categoryMarker.ReplaceAllString(rest[loc[1]:], "")

	card, err := domain.NewFlashcard(id, front, back, category)
	if err != nil {
		return domain.Flashcard{}, malformed(err)
	}
	return card, nil
}
