package web

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

//go:embed templates/*.html static/*.css
var assets embed.FS

// Handler serves the question page and the JSON routes the page talks to.
type Handler struct {
	logger    *zap.Logger
	questions QuestionService
	tmpl      *template.Template
}

func NewHandler(logger *zap.Logger, questions QuestionService) *Handler {
	return &Handler{
		logger:    logger,
		questions: questions,
		tmpl:      template.Must(template.ParseFS(assets, "templates/*.html")),
	}
}

// Routes builds the router with all page, JSON and static routes.
func (h *Handler) Routes() http.Handler {
	r := mux.NewRouter()
	r.Use(requestIDMiddleware, h.accessLogMiddleware, h.recoverMiddleware)

	// Page.
	r.HandleFunc("/", h.index).Methods(http.MethodGet)
	r.HandleFunc("/question", h.questionDetail).Methods(http.MethodGet)
	r.HandleFunc("/questions", h.addQuestion).Methods(http.MethodPost)

	// JSON.
	r.HandleFunc("/allQuestions", h.apiAllQuestions).Methods(http.MethodGet)
	r.HandleFunc("/getQuestionByID/{id:[0-9]+}", h.apiQuestionByID).Methods(http.MethodGet)
	r.HandleFunc("/addQuestion", h.apiAddQuestion).Methods(http.MethodPost)

	r.HandleFunc("/index.css", serveStylesheet).Methods(http.MethodGet)
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	return r
}

func serveStylesheet(w http.ResponseWriter, r *http.Request) {
	http.ServeFileFS(w, r, assets, "static/index.css")
}
