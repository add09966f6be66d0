package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/aliskhannn/sat-math-bot/internal/domain/entities"
)

// ProblemGenerator supplies quiz items. Generate never fails; on any
// upstream problem it returns the fixed fallback item.
type ProblemGenerator interface {
	Generate(ctx context.Context) entities.QuizItem
}

// SessionStore holds each user's open question, at most one at a time.
type SessionStore interface {
	HasOpen(userID int64) bool
	Open(userID int64, item entities.QuizItem) error
	Take(userID int64) (entities.QuizItem, bool)
}

// ScoreTracker keeps per-user cumulative correct/total counters.
type ScoreTracker interface {
	Record(userID int64, wasCorrect bool) entities.ScoreRecord
	Read(userID int64) entities.ScoreRecord
}

// Reply texts for the conflict, format-correction and empty-score paths.
const (
	msgActiveQuestion  = "You already have a question. Answer it first!"
	msgReplyWithLetter = "Please reply with A, B, C, or D."
	msgNoScoreYet      = "You haven't answered any questions yet.\nType /problem to get one!"
)

// QuizService drives the per-user question lifecycle: it hands out one
// question at a time, grades submitted answers, and keeps the running
// score. Each method returns the reply text to send; an empty string
// means no reply.
type QuizService struct {
	generator ProblemGenerator
	sessions  SessionStore
	scores    ScoreTracker
	logger    *zap.Logger
}

// NewQuizService creates a QuizService.
func NewQuizService(
	generator ProblemGenerator,
	sessions SessionStore,
	scores ScoreTracker,
	logger *zap.Logger,
) *QuizService {
	return &QuizService{
		generator: generator,
		sessions:  sessions,
		scores:    scores,
		logger:    logger,
	}
}

// StartProblem hands the user a new question, or reminds them of the
// open one. The open-session check is repeated atomically inside Open,
// so two concurrent requests for the same user cannot both succeed.
func (s *QuizService) StartProblem(ctx context.Context, userID int64) string {
	if s.sessions.HasOpen(userID) {
		return msgActiveQuestion
	}

	item := s.generator.Generate(ctx)

	if err := s.sessions.Open(userID, item); err != nil {
		// Lost a race with a concurrent request from the same user.
		s.logger.Debug("question already open",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return msgActiveQuestion
	}

	s.logger.Info("question opened",
		zap.Int64("user_id", userID),
	)

	return formatQuestion(item)
}

// CheckAnswer grades a free-text answer against the user's open
// question. With no open question the text is ignored. A reply that is
// not a single letter A–D gets a corrective prompt and leaves the
// question open and the score untouched.
func (s *QuizService) CheckAnswer(ctx context.Context, userID int64, text string) string {
	if !s.sessions.HasOpen(userID) {
		return ""
	}

	answer := strings.ToUpper(strings.TrimSpace(text))
	if !entities.HasLabel(answer) {
		return msgReplyWithLetter
	}

	item, ok := s.sessions.Take(userID)
	if !ok {
		return ""
	}

	correct := answer == item.CorrectAnswer
	rec := s.scores.Record(userID, correct)

	s.logger.Info("answer graded",
		zap.Int64("user_id", userID),
		zap.String("answer", answer),
		zap.Bool("correct", correct),
		zap.Int("score_correct", rec.Correct),
		zap.Int("score_total", rec.Total),
	)

	return formatResult(item, correct, rec)
}

// Score reports the user's current tally without creating a record.
func (s *QuizService) Score(userID int64) string {
	rec := s.scores.Read(userID)
	if rec.Total == 0 {
		return msgNoScoreYet
	}
	return fmt.Sprintf("📊 Your Score: %d/%d", rec.Correct, rec.Total)
}

// formatQuestion lays out a question: prompt, blank line, one choice
// per line in label order, then the answer instruction.
func formatQuestion(item entities.QuizItem) string {
	var sb strings.Builder

	sb.WriteString(item.Question)
	sb.WriteString("\n\n")

	for _, label := range entities.ChoiceLabels {
		fmt.Fprintf(&sb, "%s) %s\n", label, item.Choices[label])
	}

	sb.WriteString("\n📝 Reply with A, B, C, or D.")
	return sb.String()
}

// formatResult lays out a grading reply: verdict, the explanation
// (always shown), and the updated tally.
func formatResult(item entities.QuizItem, correct bool, rec entities.ScoreRecord) string {
	var sb strings.Builder

	if correct {
		sb.WriteString("✅ Correct!\n\n")
	} else {
		fmt.Fprintf(&sb, "❌ Incorrect.\nCorrect answer: %s\n\n", item.CorrectAnswer)
	}

	sb.WriteString("Explanation:\n")
	sb.WriteString(item.Explanation)

	fmt.Fprintf(&sb, "\n\n📊 Your Score: %d/%d", rec.Correct, rec.Total)
	return sb.String()
}
