package extract

import (
	"regexp"
	"strings"

	"github.com/phrazzld/scry-study/internal/domain"
)

var (
	// optionLine matches "(A) text" on its own line, indentation allowed.
	optionLine = regexp.MustCompile(`(?m)^[ \t]*\(([A-D])\)[ \t]+(.+?)[ \t]*$`)

	// correctMarker matches "**Correct Answer: (C)**".
	correctMarker = regexp.MustCompile(`\*\*Correct Answer:[ \t]*\(([A-D])\)[ \t]*\*\*`)
)

// MCQExtractor parses multiple-choice quiz text into questions.
//
// A block looks like:
//
//	Text before the first block is ignored.
//
//	1. **Question text?**
//	    (A) First option
//	    (B) Second option
//	    (C) Third option
//	    (D) Fourth option
//	    **Correct Answer: (C)** Explanation text.
type MCQExtractor struct {
	opts options
}

// NewMCQExtractor creates an MCQExtractor.
func NewMCQExtractor(opts ...Option) *MCQExtractor {
	return &MCQExtractor{opts: newOptions("mcq_extractor", opts)}
}

// Parse returns the questions of every well-formed block in input order.
// It returns ErrEmptyResult (or ErrEmptyInput) when nothing could be parsed.
func (e *MCQExtractor) Parse(raw string) ([]domain.Question, error) {
	questions, _, err := e.ParseWithReport(raw)
	return questions, err
}

// ParseWithReport is Parse plus a Report of offered and skipped blocks.
func (e *MCQExtractor) ParseWithReport(raw string) ([]domain.Question, *Report, error) {
	return run(raw, e.opts, domain.KindMCQ.String(), parseQuestionBlock)
}

// ParseQuestions parses raw with a default MCQExtractor.
func ParseQuestions(raw string) ([]domain.Question, error) {
	return NewMCQExtractor().Parse(raw)
}

func parseQuestionBlock(b block, id int) (domain.Question, error) {
	prompt, ok := b.prompt()
	if !ok || strings.TrimSpace(prompt) == "" {
		return domain.Question{}, ErrMissingPrompt
	}

	options := make(map[domain.OptionLetter]string, 4)
	for _, m := range optionLine.FindAllStringSubmatch(b.text, -1) {
		letter := domain.OptionLetter(m[1])
		if _, dup := options[letter]; dup {
			return domain.Question{}, ErrOptionSet
		}
		options[letter] = m[2]
	}
	if len(options) != len(domain.OptionLetters()) {
		return domain.Question{}, ErrOptionSet
	}

	loc := correctMarker.FindStringSubmatchIndex(b.text)
	if loc == nil {
		return domain.Question{}, ErrMissingCorrectAnswer
	}
	correct := domain.OptionLetter(b.text[loc[2]:loc[3]])
	explanation := b.text[loc[1]:]

	q, err := domain.NewQuestion(id, prompt, options, correct, explanation)
	if err != nil {
		return domain.Question{}, malformed(err)
	}
	return q, nil
}
