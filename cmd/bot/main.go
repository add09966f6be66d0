package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/aliskhannn/sat-math-bot/internal/config"
	"github.com/aliskhannn/sat-math-bot/internal/delivery/telegram"
	"github.com/aliskhannn/sat-math-bot/internal/generator"
	"github.com/aliskhannn/sat-math-bot/internal/logger"
	"github.com/aliskhannn/sat-math-bot/internal/service"
	"github.com/aliskhannn/sat-math-bot/internal/storage"
)

func main() {
	// Local development convenience; missing .env is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zl, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zl.Sync() }()

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		zl.Fatal("failed to create telegram bot", zap.Error(err))
	}

	// Set commands.
	commands := []tgbotapi.BotCommand{
		{
			Command:     "start",
			Description: "Show the welcome message",
		},
		{
			Command:     "problem",
			Description: "Get a new SAT-style question",
		},
		{
			Command:     "score",
			Description: "See your running score",
		},
	}

	_, err = bot.Request(tgbotapi.NewSetMyCommands(commands...))
	if err != nil {
		zl.Warn("failed to set bot commands", zap.Error(err))
	}

	zl.Info("authorized on telegram", zap.String("account", bot.Self.UserName))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	provider, err := generator.NewGeminiProvider(ctx, cfg.GeminiAPIKey, cfg.Gemini.Model)
	if err != nil {
		zl.Fatal("failed to create gemini provider", zap.Error(err))
	}

	problemGenerator := generator.New(provider, zl, cfg.Gemini.Timeout)

	sessions := storage.NewSessionStore()
	scores := storage.NewScoreTracker()

	quizService := service.NewQuizService(problemGenerator, sessions, scores, zl)

	handler := telegram.NewHandler(bot, zl, quizService)
	if err := handler.Run(ctx); err != nil && ctx.Err() == nil {
		zl.Fatal("telegram handler failed", zap.Error(err))
	}

	zl.Info("shutdown signal received")
}
