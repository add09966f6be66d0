package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aliskhannn/sat-math-bot/internal/domain/entities"
	"github.com/aliskhannn/sat-math-bot/internal/storage"
)

// stubGenerator hands out the configured items in order, repeating the
// last one once the list is exhausted.
type stubGenerator struct {
	items []entities.QuizItem
	calls int
}

func (g *stubGenerator) Generate(_ context.Context) entities.QuizItem {
	i := g.calls
	if i >= len(g.items) {
		i = len(g.items) - 1
	}
	g.calls++
	return g.items[i]
}

func algebraItem() entities.QuizItem {
	return entities.QuizItem{
		Question: "If 2x + 3 = 11, what is x?",
		Choices: map[string]string{
			"A": "3", "B": "4", "C": "5", "D": "6",
		},
		CorrectAnswer: "B",
		Explanation:   "2x + 3 = 11 → 2x = 8 → x = 4",
	}
}

func newTestService(items ...entities.QuizItem) (*QuizService, *storage.ScoreTracker) {
	scores := storage.NewScoreTracker()
	svc := NewQuizService(
		&stubGenerator{items: items},
		storage.NewSessionStore(),
		scores,
		zap.NewNop(),
	)
	return svc, scores
}

func TestStartProblem_FormatsQuestion(t *testing.T) {
	svc, _ := newTestService(algebraItem())

	got := svc.StartProblem(context.Background(), 1)
	want := "If 2x + 3 = 11, what is x?\n\n" +
		"A) 3\n" +
		"B) 4\n" +
		"C) 5\n" +
		"D) 6\n" +
		"\n📝 Reply with A, B, C, or D."
	require.Equal(t, want, got)
}

func TestStartProblem_SecondRequestIsRefused(t *testing.T) {
	second := algebraItem()
	second.Question = "If 5x = 20, what is x?"
	second.CorrectAnswer = "A"
	svc, _ := newTestService(algebraItem(), second)

	first := svc.StartProblem(context.Background(), 1)
	require.Contains(t, first, "If 2x + 3 = 11")

	got := svc.StartProblem(context.Background(), 1)
	require.Equal(t, msgActiveQuestion, got)

	// The stored item is unchanged: grading still runs against the
	// first question.
	reply := svc.CheckAnswer(context.Background(), 1, "B")
	require.Contains(t, reply, "✅ Correct!")
}

func TestCheckAnswer_NoOpenQuestionIsNoop(t *testing.T) {
	svc, scores := newTestService(algebraItem())

	require.Empty(t, svc.CheckAnswer(context.Background(), 1, "A"))
	require.Empty(t, svc.CheckAnswer(context.Background(), 1, "hello"))
	require.Zero(t, scores.Read(1).Total)
}

func TestCheckAnswer_InvalidLetterKeepsQuestionOpen(t *testing.T) {
	svc, scores := newTestService(algebraItem())

	svc.StartProblem(context.Background(), 1)

	// Malformed input any number of times: same corrective reply,
	// state and score untouched.
	for i := 0; i < 3; i++ {
		got := svc.CheckAnswer(context.Background(), 1, "E")
		require.Equal(t, msgReplyWithLetter, got)
	}
	require.Equal(t, msgReplyWithLetter, svc.CheckAnswer(context.Background(), 1, "maybe 4?"))
	require.Zero(t, scores.Read(1).Total)

	// Question is still open and gradable.
	reply := svc.CheckAnswer(context.Background(), 1, "B")
	require.Contains(t, reply, "✅ Correct!")
	require.Equal(t, 1, scores.Read(1).Total)
}

func TestCheckAnswer_NormalizesCaseAndWhitespace(t *testing.T) {
	for _, answer := range []string{" b ", "b", "B"} {
		svc, scores := newTestService(algebraItem())
		svc.StartProblem(context.Background(), 1)

		reply := svc.CheckAnswer(context.Background(), 1, answer)
		require.Contains(t, reply, "✅ Correct!", "answer %q should grade as correct", answer)
		require.Equal(t, 1, scores.Read(1).Correct)
	}
}

func TestCheckAnswer_IncorrectShowsAnswerAndExplanation(t *testing.T) {
	svc, scores := newTestService(algebraItem())
	svc.StartProblem(context.Background(), 1)

	reply := svc.CheckAnswer(context.Background(), 1, "A")
	require.Contains(t, reply, "❌ Incorrect.")
	require.Contains(t, reply, "Correct answer: B")
	require.Contains(t, reply, "Explanation:\n2x + 3 = 11 → 2x = 8 → x = 4")
	require.Contains(t, reply, "📊 Your Score: 0/1")

	rec := scores.Read(1)
	require.Equal(t, 0, rec.Correct)
	require.Equal(t, 1, rec.Total)
}

func TestFullRound_AskAnswerAskAgain(t *testing.T) {
	second := algebraItem()
	second.Question = "If x/2 = 7, what is x?"
	svc, _ := newTestService(algebraItem(), second)

	question := svc.StartProblem(context.Background(), 1)
	require.Equal(t, 4, strings.Count(question, ")"), "question should list 4 choices")

	reply := svc.CheckAnswer(context.Background(), 1, "b")
	require.Contains(t, reply, "✅ Correct!")
	require.Contains(t, reply, "Explanation:")
	require.Contains(t, reply, "1/1")

	// Grading closed the question; a new one can be opened.
	next := svc.StartProblem(context.Background(), 1)
	require.Contains(t, next, "If x/2 = 7")
}

func TestTwoUsers_ScoresAreIsolated(t *testing.T) {
	svc, scores := newTestService(algebraItem())

	svc.StartProblem(context.Background(), 1)
	svc.StartProblem(context.Background(), 2)

	require.Contains(t, svc.CheckAnswer(context.Background(), 1, "B"), "✅ Correct!")
	require.Contains(t, svc.CheckAnswer(context.Background(), 2, "D"), "❌ Incorrect.")

	require.Equal(t, entities.ScoreRecord{Correct: 1, Total: 1}, scores.Read(1))
	require.Equal(t, entities.ScoreRecord{Correct: 0, Total: 1}, scores.Read(2))
}

func TestScore_ReadsWithoutCreating(t *testing.T) {
	svc, scores := newTestService(algebraItem())

	require.Equal(t, msgNoScoreYet, svc.Score(1))
	require.Zero(t, scores.Read(1).Total)

	svc.StartProblem(context.Background(), 1)
	svc.CheckAnswer(context.Background(), 1, "B")

	require.Equal(t, "📊 Your Score: 1/1", svc.Score(1))
}
