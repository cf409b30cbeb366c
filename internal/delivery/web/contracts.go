package web

import (
	"context"

	"github.com/aliskhannn/question-desk/internal/domain/entities"
	"github.com/aliskhannn/question-desk/internal/service"
)

type QuestionService interface {
	List(ctx context.Context) ([]entities.Question, error)
	Get(ctx context.Context, rawID string) (*entities.Question, error)
	Add(ctx context.Context, in service.AddQuestionInput) (string, error)
	Create(ctx context.Context, q entities.NewQuestion) (string, error)
}
