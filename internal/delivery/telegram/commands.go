package telegram

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/aliskhannn/question-desk/internal/repository"
	"github.com/aliskhannn/question-desk/internal/service"
)

// questionHandler shows the question whose ID the user typed in.
func (h *Handler) questionHandler(rawID string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		q, err := h.questions.Get(ctx, rawID)
		if err != nil {
			var apiErr *repository.APIError

			switch {
			case errors.Is(err, service.ErrMissingQuestionID):
				h.send(newPlainMessage(chatID, msgEnterQuestionID))
				return nil
			case errors.Is(err, service.ErrInvalidQuestionID):
				h.send(newPlainMessage(chatID, msgInvalidQuestionID))
				return nil
			case errors.As(err, &apiErr):
				h.send(newPlainMessage(chatID, apiErr.Message))
				return nil
			}

			return err
		}

		h.send(newHTMLMessage(chatID, processQuestion(*q)))
		return nil
	}
}

// addHandler creates a question from "title | type of content | type, type".
func (h *Handler) addHandler(args string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		in, ok := parseAddArgs(args)
		if !ok {
			h.send(newPlainMessage(chatID, msgUseAdd))
			return nil
		}

		msg, err := h.questions.Add(ctx, in)
		if err != nil {
			if errors.Is(err, service.ErrMissingField) {
				h.send(newPlainMessage(chatID, msgUseAdd))
				return nil
			}

			h.logger.Error("failed to add a new question", zap.Int64("chat_id", chatID), zap.Error(err))
			h.send(newPlainMessage(chatID, msgAddQuestionError))
			return nil
		}

		h.send(newPlainMessage(chatID, msg))
		return nil
	}
}

func parseAddArgs(args string) (service.AddQuestionInput, bool) {
	parts := strings.SplitN(args, "|", 3)
	if len(parts) < 2 {
		return service.AddQuestionInput{}, false
	}

	in := service.AddQuestionInput{
		Title:       strings.TrimSpace(parts[0]),
		ContentType: strings.TrimSpace(parts[1]),
	}
	if len(parts) == 3 {
		in.QuestionTypes = parts[2]
	}

	return in, true
}
