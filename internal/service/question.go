package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/aliskhannn/question-desk/internal/domain/entities"
)

var (
	ErrMissingQuestionID = errors.New("please enter a question ID")
	ErrInvalidQuestionID = errors.New("question ID must be a number")
	ErrMissingField      = errors.New("required field is empty")
)

type QuestionRepository interface {
	All(ctx context.Context) ([]entities.Question, error)
	ByID(ctx context.Context, id int64) (*entities.Question, error)
	Add(ctx context.Context, q entities.NewQuestion) (string, error)
}

// AddQuestionInput is raw form input for a new question.
// QuestionTypes is a comma-separated tag list.
type AddQuestionInput struct {
	Title         string
	ContentType   string
	QuestionTypes string
}

type QuestionService struct {
	repository QuestionRepository
}

func NewQuestionService(repository QuestionRepository) *QuestionService {
	return &QuestionService{repository: repository}
}

func (s *QuestionService) List(ctx context.Context) ([]entities.Question, error) {
	return s.repository.All(ctx)
}

// Get looks up a question by the identifier the user typed in.
func (s *QuestionService) Get(ctx context.Context, rawID string) (*entities.Question, error) {
	id, err := ParseQuestionID(rawID)
	if err != nil {
		return nil, err
	}

	return s.repository.ByID(ctx, id)
}

// Add validates presence of the required fields, splits the comma-separated
// tag list and submits the question. It returns the backend's confirmation message.
func (s *QuestionService) Add(ctx context.Context, in AddQuestionInput) (string, error) {
	return s.Create(ctx, entities.NewQuestion{
		Title:         in.Title,
		ContentType:   in.ContentType,
		QuestionTypes: entities.ParseQuestionTypes(in.QuestionTypes),
	})
}

// Create submits an already structured question after trimming its fields.
func (s *QuestionService) Create(ctx context.Context, q entities.NewQuestion) (string, error) {
	q.Title = strings.TrimSpace(q.Title)
	if q.Title == "" {
		return "", fmt.Errorf("title: %w", ErrMissingField)
	}

	q.ContentType = strings.TrimSpace(q.ContentType)
	if q.ContentType == "" {
		return "", fmt.Errorf("type of content: %w", ErrMissingField)
	}

	types := make([]string, 0, len(q.QuestionTypes))
	for _, t := range q.QuestionTypes {
		if t = strings.TrimSpace(t); t != "" {
			types = append(types, t)
		}
	}
	q.QuestionTypes = types

	return s.repository.Add(ctx, q)
}

// ParseQuestionID converts user input into a backend identifier.
func ParseQuestionID(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, ErrMissingQuestionID
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", raw, ErrInvalidQuestionID)
	}

	return id, nil
}
