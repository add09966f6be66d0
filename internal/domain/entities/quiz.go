package entities

// ChoiceLabels is the fixed set of answer labels in display order.
var ChoiceLabels = []string{"A", "B", "C", "D"}

// QuizItem represents a single multiple-choice question with exactly
// four labeled choices, the correct label, and a worked explanation.
//
// A QuizItem is only ever constructed from generator output that passed
// validation, or from the fixed fallback item; every field is guaranteed
// non-empty and CorrectAnswer is always a key of Choices.
type QuizItem struct {
	Question      string            // question prompt shown to the user
	Choices       map[string]string // choice text keyed by label A–D
	CorrectAnswer string            // the correct label, one of A–D
	Explanation   string            // shown after grading, win or lose
}

// HasLabel reports whether label is one of the four valid choice labels.
func HasLabel(label string) bool {
	for _, l := range ChoiceLabels {
		if l == label {
			return true
		}
	}
	return false
}
