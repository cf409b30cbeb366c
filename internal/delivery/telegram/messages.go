// messages.go contains message templates and formatting functions for Telegram.

package telegram

import (
	"fmt"
	"html"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/question-desk/internal/domain/entities"
)

const (
	msgWelcome = "Welcome! This bot shows questions from the question database.\n\n" + msgCommands
	msgHelp    = msgCommands + "\n\nYou can also send a question ID on its own."

	msgCommands = "/all — list all questions\n" +
		"/question ID — show one question\n" +
		"/add title | type of content | type, type — add a question"
)

// Error messages.
const (
	msgEnterQuestionID     = "Please enter a question ID."
	msgInvalidQuestionID   = "Question ID must be a number."
	msgQuestionUnavailable = "Failed to fetch questions. Please try again later."
	msgNoQuestions         = "There are no questions yet."
	msgUseAdd              = "Use: /add title | type of content | type, type"
	msgAddQuestionError    = "Failed to add a new question. Please try again!"
	msgInternalError       = "Something went wrong. Please try again later."
	msgUnknownCommand      = "Unknown command.\n\n" + msgCommands
)

// processQuestion renders a question with the same fields the web page shows.
func processQuestion(q entities.Question) string {
	return fmt.Sprintf(
		"<b>Question ID:</b> %d\n<b>Question Title:</b> %s\n<b>Type of Content:</b> %s\n<b>Type of Question:</b> %s",
		q.ID,
		html.EscapeString(q.Title),
		html.EscapeString(q.ContentType),
		html.EscapeString(q.TypesLabel()),
	)
}

func newHTMLMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	return msg
}

// newPlainMessage creates a message without parse mode.
func newPlainMessage(chatID int64, text string) tgbotapi.MessageConfig {
	return tgbotapi.NewMessage(chatID, text)
}
