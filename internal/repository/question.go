package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/aliskhannn/question-desk/internal/domain/entities"
	"github.com/aliskhannn/question-desk/internal/requestid"
)

var (
	ErrQuestionNotFound   = errors.New("question not found")
	ErrBackendUnavailable = errors.New("question backend unavailable")
	ErrUnexpectedResponse = errors.New("unexpected response from question backend")
)

// APIError is a non-2xx reply from the backend. Message carries the backend's
// "error" field when it sent one.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend responded %d: %s", e.StatusCode, e.Message)
}

// Is reports a 404 reply as ErrQuestionNotFound.
func (e *APIError) Is(target error) bool {
	return target == ErrQuestionNotFound && e.StatusCode == http.StatusNotFound
}

// Options configure a QuestionRepository.
type Options struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

// QuestionRepository reads and creates questions through the backend HTTP API.
type QuestionRepository struct {
	client *resty.Client
}

// NewQuestionRepository creates a repository bound to the backend at opts.BaseURL.
func NewQuestionRepository(opts Options) *QuestionRepository {
	client := resty.New().
		SetBaseURL(opts.BaseURL).
		SetHeader("Accept", contentTypeJSON)

	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}
	if opts.UserAgent != "" {
		client.SetHeader("User-Agent", opts.UserAgent)
	}

	return &QuestionRepository{client: client}
}

// All returns every question the backend knows about.
func (r *QuestionRepository) All(ctx context.Context) ([]entities.Question, error) {
	resp, err := r.request(ctx).Get(AllQuestionsPath)
	if err != nil {
		return nil, fmt.Errorf("get all questions: %w: %w", ErrBackendUnavailable, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("get all questions: %w", apiError(resp))
	}

	var questions []entities.Question
	if err := json.Unmarshal(resp.Body(), &questions); err != nil {
		return nil, fmt.Errorf("get all questions: %w: %w", ErrUnexpectedResponse, err)
	}

	return questions, nil
}

// ByID returns the question with the given identifier.
// A missing question is reported as an *APIError matching ErrQuestionNotFound.
func (r *QuestionRepository) ByID(ctx context.Context, id int64) (*entities.Question, error) {
	resp, err := r.request(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Get(QuestionByIDPath)
	if err != nil {
		return nil, fmt.Errorf("get question %d: %w: %w", id, ErrBackendUnavailable, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("get question %d: %w", id, apiError(resp))
	}

	var q entities.Question
	if err := json.Unmarshal(resp.Body(), &q); err != nil {
		return nil, fmt.Errorf("get question %d: %w: %w", id, ErrUnexpectedResponse, err)
	}

	return &q, nil
}

// Add submits a new question and returns the backend's confirmation message.
func (r *QuestionRepository) Add(ctx context.Context, q entities.NewQuestion) (string, error) {
	resp, err := r.request(ctx).
		SetHeader("Content-Type", contentTypeJSON).
		SetBody(q).
		Post(AddQuestionPath)
	if err != nil {
		return "", fmt.Errorf("add question: %w: %w", ErrBackendUnavailable, err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("add question: %w", apiError(resp))
	}

	var reply entities.MessageReply
	if err := json.Unmarshal(resp.Body(), &reply); err != nil {
		return "", fmt.Errorf("add question: %w: %w", ErrUnexpectedResponse, err)
	}

	return reply.Message, nil
}

func (r *QuestionRepository) request(ctx context.Context) *resty.Request {
	req := r.client.R().SetContext(ctx)
	if id := requestid.FromContext(ctx); id != "" {
		req.SetHeader(requestid.Header, id)
	}
	return req
}

func apiError(resp *resty.Response) *APIError {
	e := &APIError{StatusCode: resp.StatusCode()}

	var reply entities.ErrorReply
	if err := json.Unmarshal(resp.Body(), &reply); err == nil && reply.Error != "" {
		e.Message = reply.Error
		return e
	}

	e.Message = http.StatusText(resp.StatusCode())
	if e.Message == "" {
		e.Message = defaultErrorMessage
	}
	return e
}
