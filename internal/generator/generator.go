package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/aliskhannn/sat-math-bot/internal/domain/entities"
)

// Generator produces quiz items from a text-completion Provider.
//
// Generate never fails: any provider error, timeout, or malformed
// response is logged and replaced by the fixed fallback item, so
// callers always receive a well-formed QuizItem.
type Generator struct {
	provider Provider
	logger   *zap.Logger
	timeout  time.Duration
}

// New creates a Generator. A non-zero timeout bounds each provider
// call; on expiry the fallback item is served.
func New(provider Provider, logger *zap.Logger, timeout time.Duration) *Generator {
	return &Generator{
		provider: provider,
		logger:   logger,
		timeout:  timeout,
	}
}

// Generate requests one medium-difficulty algebra item from the
// provider, validates its shape, and returns it. On any failure it
// returns the fallback item instead.
func (g *Generator) Generate(ctx context.Context) entities.QuizItem {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	raw, err := g.provider.Complete(ctx, problemPrompt)
	if err != nil {
		g.logger.Error("problem generation failed, serving fallback",
			zap.Error(err),
		)
		return Fallback()
	}

	item, err := parseItem(raw)
	if err != nil {
		g.logger.Error("generated item rejected, serving fallback",
			zap.Error(err),
			zap.String("raw", raw),
		)
		return Fallback()
	}

	return item
}

// itemOutput is the raw model response before validation.
type itemOutput struct {
	Question      string            `json:"question"`
	Choices       map[string]string `json:"choices"`
	CorrectAnswer string            `json:"correct_answer"`
	Explanation   string            `json:"explanation"`
}

// parseItem strips code-fence wrappers from the raw response, decodes
// it as JSON, and validates the result. A QuizItem is returned only if
// every field passes; otherwise the response is rejected whole.
func parseItem(raw string) (entities.QuizItem, error) {
	clean := strings.TrimSpace(raw)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")
	clean = strings.TrimSpace(clean)

	var out itemOutput
	if err := json.Unmarshal([]byte(clean), &out); err != nil {
		return entities.QuizItem{}, fmt.Errorf("decode generated item: %w", err)
	}

	if out.Question == "" {
		return entities.QuizItem{}, fmt.Errorf("generated item has empty question")
	}
	if out.Explanation == "" {
		return entities.QuizItem{}, fmt.Errorf("generated item has empty explanation")
	}

	if len(out.Choices) != len(entities.ChoiceLabels) {
		return entities.QuizItem{}, fmt.Errorf("generated item has %d choices, want %d",
			len(out.Choices), len(entities.ChoiceLabels))
	}
	for _, label := range entities.ChoiceLabels {
		if out.Choices[label] == "" {
			return entities.QuizItem{}, fmt.Errorf("generated item is missing choice %s", label)
		}
	}

	answer := strings.TrimSpace(strings.ToUpper(out.CorrectAnswer))
	if !entities.HasLabel(answer) {
		return entities.QuizItem{}, fmt.Errorf("generated item has invalid correct answer %q",
			out.CorrectAnswer)
	}

	return entities.QuizItem{
		Question:      out.Question,
		Choices:       out.Choices,
		CorrectAnswer: answer,
		Explanation:   out.Explanation,
	}, nil
}

// Fallback returns the fixed quiz item served whenever generation
// fails. It is identical on every call, regardless of failure cause.
func Fallback() entities.QuizItem {
	return entities.QuizItem{
		Question: "If 2x + 3 = 11, what is x?",
		Choices: map[string]string{
			"A": "3",
			"B": "4",
			"C": "5",
			"D": "6",
		},
		CorrectAnswer: "B",
		Explanation:   "2x + 3 = 11 → 2x = 8 → x = 4",
	}
}
