package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/aliskhannn/question-desk/internal/domain/entities"
	"github.com/aliskhannn/question-desk/internal/repository"
	"github.com/aliskhannn/question-desk/internal/service"
)

func (h *Handler) apiAllQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.questions.List(r.Context())
	if err != nil {
		h.writeBackendError(w, "all questions", err)
		return
	}
	if questions == nil {
		questions = []entities.Question{}
	}

	h.writeJSON(w, http.StatusOK, questions)
}

func (h *Handler) apiQuestionByID(w http.ResponseWriter, r *http.Request) {
	q, err := h.questions.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeBackendError(w, "question by id", err)
		return
	}

	h.writeJSON(w, http.StatusOK, q)
}

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

func (h *Handler) apiAddQuestion(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var in entities.NewQuestion
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.writeJSON(w, http.StatusRequestEntityTooLarge, entities.ErrorReply{Error: msgBodyTooLarge})
			return
		}
		h.writeJSON(w, http.StatusBadRequest, entities.ErrorReply{Error: msgInvalidBody})
		return
	}

	msg, err := h.questions.Create(r.Context(), in)
	if err != nil {
		h.writeBackendError(w, "add question", err)
		return
	}

	h.writeJSON(w, http.StatusCreated, entities.MessageReply{Message: msg})
}

// writeBackendError relays backend failures with the backend's status and
// message; an unreachable backend becomes 502.
func (h *Handler) writeBackendError(w http.ResponseWriter, op string, err error) {
	var apiErr *repository.APIError

	switch {
	case errors.Is(err, service.ErrMissingField),
		errors.Is(err, service.ErrMissingQuestionID),
		errors.Is(err, service.ErrInvalidQuestionID):
		h.writeJSON(w, http.StatusBadRequest, entities.ErrorReply{Error: err.Error()})

	case errors.As(err, &apiErr):
		h.writeJSON(w, apiErr.StatusCode, entities.ErrorReply{Error: apiErr.Message})

	case errors.Is(err, repository.ErrBackendUnavailable),
		errors.Is(err, repository.ErrUnexpectedResponse):
		h.logger.Error("backend request failed", zap.String("op", op), zap.Error(err))
		h.writeJSON(w, http.StatusBadGateway, entities.ErrorReply{Error: msgBackendUnavailable})

	default:
		h.logger.Error("request failed", zap.String("op", op), zap.Error(err))
		h.writeJSON(w, http.StatusInternalServerError, entities.ErrorReply{Error: msgInternalError})
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}
