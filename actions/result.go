package actions

import (
	"errors"

	"doclens/extractor"
	"doclens/flows"
	"doclens/logger"
	"doclens/repositories"
)

// Result is the uniform envelope returned by every action. The
// presentation layer only ever sees this shape, never a raw error.
type Result struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func ok(data any) Result {
	return Result{Success: true, Data: data}
}

// fail logs the underlying error and converts it into a human-readable
// envelope message. Failures are never fatal; the user can always retry.
func fail(action string, err error) Result {
	logger.ErrorWithFields("action failed", logger.Fields{
		"action": action,
		"error":  err.Error(),
	})
	return Result{Success: false, Error: userMessage(err)}
}

// userMessage maps the error taxonomy onto messages safe to show in a
// notification. Unknown errors pass their message through, mirroring how
// upstream failures already carry presentable text.
func userMessage(err error) string {
	switch {
	case errors.Is(err, extractor.ErrUnsupportedFileType):
		return "Unsupported file type. Please upload a PDF or DOCX file."
	case errors.Is(err, extractor.ErrEmptyDocument):
		return "The document appears to be empty or contains no extractable text. This might be a scanned image PDF without OCR."
	case errors.Is(err, flows.ErrInvalidInput):
		return err.Error()
	case errors.Is(err, flows.ErrModelResponseInvalid):
		return "The AI returned an unexpected response. Please try again."
	case errors.Is(err, flows.ErrNoAudioGenerated):
		return "No audio could be generated for this text."
	case errors.Is(err, flows.ErrQuotaExhausted):
		return "The AI request limit has been reached. Please try again later."
	case errors.Is(err, repositories.ErrNotFound):
		return "Document not found."
	default:
		return err.Error()
	}
}
