package score

import (
	"math"

	"github.com/phrazzld/scry-study/internal/domain"
)

// AnswerSheet is the read-only view of a quiz session the scorer needs.
// *session.Controller[domain.Question] implements it.
type AnswerSheet interface {
	// Items returns the questions in session order.
	Items() []domain.Question
	// Answers returns the recorded answers keyed by item index.
	Answers() map[int]domain.OptionLetter
}

// Review is the grading of one question.
type Review struct {
	Index      int                 `json:"index"`
	QuestionID int                 `json:"question_id"`
	Selected   domain.OptionLetter `json:"selected,omitempty"`
	Correct    domain.OptionLetter `json:"correct"`
	Answered   bool                `json:"answered"`
	IsCorrect  bool                `json:"is_correct"`
}

// Result summarises a graded session.
type Result struct {
	Correct    int      `json:"correct"`
	Answered   int      `json:"answered"`
	Total      int      `json:"total"`
	Percentage int      `json:"percentage"`
	Reviews    []Review `json:"reviews"`
}

// Compute returns the number of questions whose recorded answer matches the
// correct option. Unanswered questions count as wrong.
func Compute(sheet AnswerSheet) int {
	items := sheet.Items()
	correct := 0
	for i, selected := range sheet.Answers() {
		if i >= 0 && i < len(items) && items[i].IsCorrect(selected) {
			correct++
		}
	}
	return correct
}

// Percentage returns Compute as a whole percentage of all questions,
// rounded half away from zero. An empty sheet scores 0.
func Percentage(sheet AnswerSheet) int {
	return percent(Compute(sheet), len(sheet.Items()))
}

// Summarize grades every question of the sheet.
func Summarize(sheet AnswerSheet) Result {
	items := sheet.Items()
	answers := sheet.Answers()

	result := Result{
		Total:   len(items),
		Reviews: make([]Review, 0, len(items)),
	}
	for i, q := range items {
		selected, answered := answers[i]
		r := Review{
			Index:      i,
			QuestionID: q.ID,
			Selected:   selected,
			Correct:    q.CorrectOption,
			Answered:   answered,
			IsCorrect:  answered && q.IsCorrect(selected),
		}
		if answered {
			result.Answered++
		}
		if r.IsCorrect {
			result.Correct++
		}
		result.Reviews = append(result.Reviews, r)
	}
	result.Percentage = percent(result.Correct, result.Total)
	return result
}

func percent(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}
