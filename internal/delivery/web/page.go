package web

import (
	"bytes"
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/aliskhannn/question-desk/internal/domain/entities"
	"github.com/aliskhannn/question-desk/internal/repository"
	"github.com/aliskhannn/question-desk/internal/service"
)

type pageData struct {
	ActiveSection string
	Alert         string
	Questions     []entities.Question
	QuestionID    string
	Detail        *detailView
	Form          addForm
}

type detailView struct {
	Question *entities.Question
	Error    string
}

type addForm struct {
	Title         string
	ContentType   string
	QuestionTypes string
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	data := pageData{ActiveSection: sectionAllQuestions}

	switch s := r.URL.Query().Get("section"); s {
	case sectionFetch, sectionAdd:
		data.ActiveSection = s
	}

	h.render(w, r, http.StatusOK, data)
}

// questionDetail handles the "fetch question" form.
func (h *Handler) questionDetail(w http.ResponseWriter, r *http.Request) {
	rawID := r.URL.Query().Get("questionId")
	data := pageData{ActiveSection: sectionFetch, QuestionID: rawID}

	q, err := h.questions.Get(r.Context(), rawID)
	switch {
	case err == nil:
		data.Detail = &detailView{Question: q}
		h.render(w, r, http.StatusOK, data)

	case errors.Is(err, service.ErrMissingQuestionID):
		data.Alert = msgEnterQuestionID
		h.render(w, r, http.StatusBadRequest, data)

	case errors.Is(err, service.ErrInvalidQuestionID):
		data.Detail = &detailView{Error: msgInvalidQuestionID}
		h.render(w, r, http.StatusBadRequest, data)

	default:
		var apiErr *repository.APIError
		if errors.As(err, &apiErr) {
			data.Detail = &detailView{Error: apiErr.Message}
			h.render(w, r, apiErr.StatusCode, data)
			return
		}

		h.logger.Error("failed to fetch question",
			zap.String("question_id", rawID),
			zap.Error(err),
		)
		data.Detail = &detailView{Error: msgFetchQuestionError}
		h.render(w, r, http.StatusBadGateway, data)
	}
}

// addQuestion handles the "add question" form. On success the form is reset
// and the question list is fetched again by render.
func (h *Handler) addQuestion(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render(w, r, http.StatusBadRequest, pageData{ActiveSection: sectionAdd, Alert: msgInvalidBody})
		return
	}

	form := addForm{
		Title:         r.PostForm.Get("questionTitle"),
		ContentType:   r.PostForm.Get("typeOfContent"),
		QuestionTypes: r.PostForm.Get("typeOfQuestion"),
	}
	data := pageData{ActiveSection: sectionAdd}

	msg, err := h.questions.Add(r.Context(), service.AddQuestionInput(form))
	switch {
	case err == nil:
		h.logger.Info("question added", zap.String("title", form.Title))
		data.Alert = msg
		h.render(w, r, http.StatusOK, data)

	case errors.Is(err, service.ErrMissingField):
		data.Alert = msgFillRequired
		data.Form = form
		h.render(w, r, http.StatusBadRequest, data)

	default:
		h.logger.Error("failed to add a new question", zap.Error(err))
		data.Alert = msgAddQuestionError
		data.Form = form
		h.render(w, r, http.StatusBadGateway, data)
	}
}

// render fetches the current question list and writes the page.
// A failed fetch is logged and leaves the list empty.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, data pageData) {
	data.Questions = h.listQuestions(r.Context())

	var buf bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&buf, "index", data); err != nil {
		h.logger.Error("failed to render page", zap.Error(err))
		http.Error(w, msgInternalError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (h *Handler) listQuestions(ctx context.Context) []entities.Question {
	questions, err := h.questions.List(ctx)
	if err != nil {
		h.logger.Error("failed to fetch questions from database", zap.Error(err))
		return nil
	}
	return questions
}
