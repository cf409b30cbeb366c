package web

// User-facing texts.
const (
	msgEnterQuestionID    = "Please enter a question ID."
	msgInvalidQuestionID  = "Question ID must be a number."
	msgFetchQuestionError = "Failed to fetch question. Please try again!"
	msgAddQuestionError   = "Failed to add a new question. Please try again!"
	msgFillRequired       = "Please fill in the question title and type of content."
	msgBackendUnavailable = "question backend unavailable"
	msgInternalError      = "internal server error"
	msgInvalidBody        = "invalid request body"
	msgBodyTooLarge       = "request body too large"
)

// Page sections.
const (
	sectionAllQuestions = "fetchAllQuestionsSection"
	sectionFetch        = "fetchQuestionSection"
	sectionAdd          = "addNewQuestionSection"
)
