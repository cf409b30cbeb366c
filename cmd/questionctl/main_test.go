package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/question-desk/internal/domain/entities"
)

func newBackend(t *testing.T) *httptest.Server {
	t.Helper()

	questions := []entities.Question{
		{ID: 1, Title: "What is a slice?", ContentType: "text", QuestionTypes: []string{"go"}},
		{ID: 2, Title: "What is a channel?", ContentType: "video", QuestionTypes: []string{"go", "concurrency"}},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /getAllQuestions", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(questions)
	})
	mux.HandleFunc("GET /getQuestionByID/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.PathValue("id") != "2" {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(entities.ErrorReply{Error: "Question not found"})
			return
		}
		_ = json.NewEncoder(w).Encode(questions[1])
	})
	mux.HandleFunc("POST /addQuestion", func(w http.ResponseWriter, r *http.Request) {
		var nq entities.NewQuestion
		if err := json.NewDecoder(r.Body).Decode(&nq); err != nil || len(nq.QuestionTypes) != 2 {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(entities.MessageReply{Message: "Question added successfully"})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestList(t *testing.T) {
	srv := newBackend(t)

	out, err := run(t, "list", "--backend-url", srv.URL, "--timeout", "2s")
	require.NoError(t, err)

	assert.Contains(t, out, "Question ID: 1\nQuestion Title: What is a slice?")
	assert.Contains(t, out, "Type of Question: go, concurrency")
}

func TestGet(t *testing.T) {
	srv := newBackend(t)

	out, err := run(t, "get", "2", "--backend-url", srv.URL, "--timeout", "2s")
	require.NoError(t, err)
	assert.Equal(t, "Question ID: 2\nQuestion Title: What is a channel?\nType of Content: video\nType of Question: go, concurrency\n", out)
}

func TestGet_NotFound(t *testing.T) {
	srv := newBackend(t)

	_, err := run(t, "get", "9", "--backend-url", srv.URL, "--timeout", "2s")
	require.EqualError(t, err, "Question not found")
}

func TestAdd(t *testing.T) {
	srv := newBackend(t)

	out, err := run(t, "add",
		"--backend-url", srv.URL, "--timeout", "2s",
		"--title", "What is a goroutine?",
		"--content-type", "text",
		"--types", "go, concurrency",
	)
	require.NoError(t, err)
	assert.Equal(t, "Question added successfully\n", out)
}

func TestAdd_MissingTitle(t *testing.T) {
	srv := newBackend(t)

	_, err := run(t, "add", "--backend-url", srv.URL, "--timeout", "2s", "--content-type", "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required field is empty")
}
