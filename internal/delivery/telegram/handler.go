package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type Handler struct {
	bot       Bot
	logger    *zap.Logger
	questions QuestionService
}

func NewHandler(bot Bot, logger *zap.Logger, questions QuestionService) *Handler {
	return &Handler{
		bot:       bot,
		logger:    logger,
		questions: questions,
	}
}

// Commands returns the command list published to Telegram clients.
func Commands() []tgbotapi.BotCommand {
	return []tgbotapi.BotCommand{
		{Command: "all", Description: "List all questions"},
		{Command: "question", Description: "Show a question by ID"},
		{Command: "add", Description: "Add a question: title | type of content | types"},
		{Command: "help", Description: "Help"},
	}
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	if _, err := h.bot.Request(tgbotapi.NewSetMyCommands(Commands()...)); err != nil {
		h.logger.Warn("failed to set bot commands", zap.Error(err))
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)
	defer h.bot.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil || update.Message.Chat == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	chatID := update.Message.Chat.ID

	if update.Message.IsCommand() {
		args := update.Message.CommandArguments()

		switch update.Message.Command() {
		case "start":
			h.send(newPlainMessage(chatID, msgWelcome))

		case "help":
			h.send(newPlainMessage(chatID, msgHelp))

		case "all":
			_ = h.withErrorHandling(h.allHandler())(ctx, chatID)

		case "question":
			_ = h.withErrorHandling(h.questionHandler(args))(ctx, chatID)

		case "add":
			_ = h.withErrorHandling(h.addHandler(args))(ctx, chatID)

		default:
			h.send(newPlainMessage(chatID, msgUnknownCommand))
		}

		return
	}

	_ = h.withErrorHandling(h.questionHandler(update.Message.Text))(ctx, chatID)
}

func (h *Handler) send(c tgbotapi.Chattable) {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
	}
}
