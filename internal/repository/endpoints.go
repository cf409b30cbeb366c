package repository

// Backend routes, relative to the configured base URL.
const (
	AllQuestionsPath    = "/getAllQuestions"
	QuestionByIDPath    = "/getQuestionByID/{id}"
	AddQuestionPath     = "/addQuestion"
	contentTypeJSON     = "application/json"
	defaultErrorMessage = "unexpected backend response"
)
