package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type QuizService interface {
	StartProblem(ctx context.Context, userID int64) string
	CheckAnswer(ctx context.Context, userID int64, text string) string
	Score(userID int64) string
}

type Handler struct {
	bot    *tgbotapi.BotAPI
	logger *zap.Logger
	quiz   QuizService
}

func NewHandler(bot *tgbotapi.BotAPI, logger *zap.Logger, quiz QuizService) *Handler {
	return &Handler{
		bot:    bot,
		logger: logger,
		quiz:   quiz,
	}
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update := <-updates:
			// Each update runs in its own goroutine so a slow
			// generation call only suspends that user's trigger.
			go h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.Message == nil || update.Message.From == nil {
		h.logger.Debug("update without message")
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	userID := update.Message.From.ID
	chatID := update.Message.Chat.ID

	if update.Message.IsCommand() {
		switch update.Message.Command() {
		case "start":
			h.send(newPlainMessage(chatID, msgWelcome))

		case "problem":
			h.sendTyping(chatID)
			h.send(newPlainMessage(chatID, h.quiz.StartProblem(ctx, userID)))

		case "score":
			h.send(newPlainMessage(chatID, h.quiz.Score(userID)))

		default:
			h.send(newPlainMessage(chatID, msgUnknownCommand))
		}

		return
	}

	if update.Message.Text == "" {
		return
	}

	reply := h.quiz.CheckAnswer(ctx, userID, update.Message.Text)
	if reply == "" {
		// No open question; free text is not ours to answer.
		return
	}

	h.send(newPlainMessage(chatID, reply))
}

// sendTyping shows the typing indicator while a question is generated.
func (h *Handler) sendTyping(chatID int64) {
	action := tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping)
	if _, err := h.bot.Request(action); err != nil {
		h.logger.Debug("failed to send chat action",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
	}
}

func (h *Handler) send(c tgbotapi.Chattable) {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
	}
}
