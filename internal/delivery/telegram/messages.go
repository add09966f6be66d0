// messages.go contains message templates for Telegram.

package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	msgWelcome = "Welcome to SAT Math Bot 🚀\n\n" +
		"Type /problem to get a new SAT-style question."

	msgUnknownCommand = "Unknown command. Available commands:\n\n" +
		"/problem — get a new question\n" +
		"/score — see your running score\n" +
		"/start — show the welcome message"
)

// newPlainMessage creates a plain message without any parse mode.
func newPlainMessage(chatID int64, text string) tgbotapi.MessageConfig {
	return tgbotapi.NewMessage(chatID, text)
}
