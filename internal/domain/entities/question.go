// Package entities contains domain entities used across the application.
package entities

import (
	"fmt"
	"strings"
)

// Question is a single question record owned by the question backend.
// The identifier is assigned by the backend when the question is created.
type Question struct {
	ID            int64    `json:"question_id"`      // backend-assigned identifier
	Title         string   `json:"question_title"`   // question title
	ContentType   string   `json:"type_of_content"`  // kind of content, e.g. "text" or "video"
	QuestionTypes []string `json:"type_of_question"` // free-form question-type tags
}

// NewQuestion is the payload submitted to the backend to create a question.
type NewQuestion struct {
	Title         string   `json:"question_title"`
	ContentType   string   `json:"type_of_content"`
	QuestionTypes []string `json:"type_of_question"`
}

// MessageReply is the backend body returned on a successful write.
type MessageReply struct {
	Message string `json:"message"`
}

// ErrorReply is the backend body returned when a request fails.
type ErrorReply struct {
	Error string `json:"error"`
}

// TypesLabel joins question-type tags for display.
func (q Question) TypesLabel() string {
	return strings.Join(q.QuestionTypes, ", ")
}

func (q Question) String() string {
	return fmt.Sprintf(
		"Question ID: %d\nQuestion Title: %s\nType of Content: %s\nType of Question: %s",
		q.ID, q.Title, q.ContentType, q.TypesLabel(),
	)
}

// ParseQuestionTypes splits a comma-separated tag list, trims every tag
// and drops empty entries.
func ParseQuestionTypes(raw string) []string {
	parts := strings.Split(raw, ",")

	types := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		types = append(types, p)
	}

	return types
}
