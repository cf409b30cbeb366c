package telegram

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/question-desk/internal/domain/entities"
)

const (
	questionsPerPage = 5
	pageDataPrefix   = "questions:"
)

func (h *Handler) allHandler() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		questions, err := h.questions.List(ctx)
		if err != nil {
			h.logger.Error("failed to fetch questions from database", zap.Error(err))
			h.send(newPlainMessage(chatID, msgQuestionUnavailable))
			return nil
		}

		if len(questions) == 0 {
			h.send(newPlainMessage(chatID, msgNoQuestions))
			return nil
		}

		text, totalPages := buildQuestionsPage(questions, 0)

		msg := newHTMLMessage(chatID, text)
		if kb := buildPageKeyboard(0, totalPages); kb != nil {
			msg.ReplyMarkup = *kb
		}

		h.send(msg)
		return nil
	}
}

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	defer func() {
		// Remove the user's "clock".
		if _, err := h.bot.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
			h.logger.Warn("callback answer error", zap.Error(err))
		}
	}()

	if cb.Message == nil || cb.Message.Chat == nil || !strings.HasPrefix(cb.Data, pageDataPrefix) {
		return
	}

	page, err := strconv.Atoi(strings.TrimPrefix(cb.Data, pageDataPrefix))
	if err != nil || page < 0 {
		h.logger.Warn("invalid page in callback", zap.String("data", cb.Data))
		return
	}

	questions, err := h.questions.List(ctx)
	if err != nil {
		h.logger.Error("failed to fetch questions from database", zap.Error(err))
		return
	}

	text, totalPages := buildQuestionsPage(questions, page)
	if text == "" {
		h.logger.Warn("page out of range", zap.Int("page", page), zap.Int("total_pages", totalPages))
		return
	}

	edit := tgbotapi.NewEditMessageText(cb.Message.Chat.ID, cb.Message.MessageID, text)
	edit.ParseMode = tgbotapi.ModeHTML
	if kb := buildPageKeyboard(page, totalPages); kb != nil {
		edit.ReplyMarkup = kb
	}

	h.send(edit)
}

func buildPageKeyboard(page, totalPages int) *tgbotapi.InlineKeyboardMarkup {
	if totalPages <= 1 {
		return nil
	}

	var row []tgbotapi.InlineKeyboardButton

	if page > 0 {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("◀️ Back", fmt.Sprintf("%s%d", pageDataPrefix, page-1)))
	}
	if page < totalPages-1 {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("Next ▶️", fmt.Sprintf("%s%d", pageDataPrefix, page+1)))
	}

	kb := tgbotapi.NewInlineKeyboardMarkup(row)
	return &kb
}

// buildQuestionsPage renders one page of questions. The text is empty when
// page is outside [0, totalPages).
func buildQuestionsPage(questions []entities.Question, page int) (text string, totalPages int) {
	totalPages = (len(questions) + questionsPerPage - 1) / questionsPerPage
	if page < 0 || page >= totalPages {
		return "", totalPages
	}

	start := page * questionsPerPage
	end := min(start+questionsPerPage, len(questions))

	var b strings.Builder
	for i, q := range questions[start:end] {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(processQuestion(q))
	}

	return b.String(), totalPages
}
