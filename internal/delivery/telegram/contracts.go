package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/question-desk/internal/domain/entities"
	"github.com/aliskhannn/question-desk/internal/service"
)

type QuestionService interface {
	List(ctx context.Context) ([]entities.Question, error)
	Get(ctx context.Context, rawID string) (*entities.Question, error)
	Add(ctx context.Context, in service.AddQuestionInput) (string, error)
}

// Bot is the subset of *tgbotapi.BotAPI the handler uses.
type Bot interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}
