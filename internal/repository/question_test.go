package repository

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/question-desk/internal/domain/entities"
	"github.com/aliskhannn/question-desk/internal/requestid"
)

func fakeQuestion(id int64) entities.Question {
	return entities.Question{
		ID:            id,
		Title:         gofakeit.Question(),
		ContentType:   gofakeit.RandomString([]string{"text", "video", "image"}),
		QuestionTypes: []string{gofakeit.Word(), gofakeit.Word()},
	}
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func newTestRepository(t *testing.T, h http.HandlerFunc) *QuestionRepository {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	return NewQuestionRepository(Options{BaseURL: srv.URL, Timeout: 2 * time.Second, UserAgent: "test-agent"})
}

func TestQuestionRepository_All(t *testing.T) {
	want := []entities.Question{fakeQuestion(1), fakeQuestion(2)}

	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, AllQuestionsPath, r.URL.Path)
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		writeJSON(t, w, http.StatusOK, want)
	})

	got, err := repo.All(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestQuestionRepository_All_PropagatesRequestID(t *testing.T) {
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "req-42", r.Header.Get(requestid.Header))
		writeJSON(t, w, http.StatusOK, []entities.Question{})
	})

	ctx := requestid.WithID(context.Background(), "req-42")
	got, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestQuestionRepository_All_MalformedBody(t *testing.T) {
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"not":"a list"`))
	})

	_, err := repo.All(context.Background())
	require.ErrorIs(t, err, ErrUnexpectedResponse)
}

func TestQuestionRepository_ByID(t *testing.T) {
	want := fakeQuestion(17)

	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/getQuestionByID/17", r.URL.Path)
		writeJSON(t, w, http.StatusOK, want)
	})

	got, err := repo.ByID(context.Background(), 17)
	require.NoError(t, err)
	assert.Equal(t, &want, got)
}

func TestQuestionRepository_ByID_NotFound(t *testing.T) {
	const msg = "Question with this specific if not found or it doesn't exists!"

	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusNotFound, entities.ErrorReply{Error: msg})
	})

	_, err := repo.ByID(context.Background(), 999)
	require.ErrorIs(t, err, ErrQuestionNotFound)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, msg, apiErr.Message)
}

func TestQuestionRepository_ServerErrorWithoutBody(t *testing.T) {
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := repo.ByID(context.Background(), 1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrQuestionNotFound)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), apiErr.Message)
}

func TestQuestionRepository_Add(t *testing.T) {
	input := entities.NewQuestion{
		Title:         gofakeit.Question(),
		ContentType:   "text",
		QuestionTypes: []string{"general"},
	}

	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, AddQuestionPath, r.URL.Path)
		assert.Contains(t, r.Header.Get("Content-Type"), "application/json")

		var got entities.NewQuestion
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, input, got)

		writeJSON(t, w, http.StatusCreated, entities.MessageReply{Message: "Question added successfully"})
	})

	msg, err := repo.Add(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "Question added successfully", msg)
}

func TestQuestionRepository_Add_BadRequest(t *testing.T) {
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, entities.ErrorReply{Error: "Invalid input format"})
	})

	_, err := repo.Add(context.Background(), entities.NewQuestion{Title: "t", ContentType: "c"})

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Invalid input format", apiErr.Message)
}

func TestQuestionRepository_BackendDown(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	repo := NewQuestionRepository(Options{BaseURL: url, Timeout: time.Second})

	_, err := repo.All(context.Background())
	require.ErrorIs(t, err, ErrBackendUnavailable)
}
