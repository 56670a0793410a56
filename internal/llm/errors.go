package llm

import "errors"

// Failures of a timetable parse call. Client.Generate returns one of the
// first four; ErrInvalidOutput comes from decoding what the model said.
var (
	ErrOllamaUnavailable = errors.New("ollama server unavailable")
	ErrTimeout           = errors.New("llm request timed out")
	ErrRetryExhausted    = errors.New("llm retry attempts exhausted")
	ErrRejected          = errors.New("ollama rejected the request")
	ErrInvalidOutput     = errors.New("invalid llm output format")
)

// ErrorCode is the short code logged with a failed call.
func ErrorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrOllamaUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrRetryExhausted):
		return "RETRY_EXHAUSTED"
	case errors.Is(err, ErrRejected):
		return "REJECTED"
	case errors.Is(err, ErrInvalidOutput):
		return "INVALID_OUTPUT"
	default:
		return "UNKNOWN"
	}
}

// Hint suggests what the user can do about err, or returns "" when there is
// nothing useful to say.
func Hint(err error) string {
	switch {
	case errors.Is(err, ErrOllamaUnavailable):
		return "start Ollama (ollama serve) or point LESSONLOG_LLM_ENDPOINT at a running server"
	case errors.Is(err, ErrTimeout):
		return "raise LESSONLOG_LLM_TIMEOUT_MS or use a smaller model"
	case errors.Is(err, ErrRejected):
		return "check that LESSONLOG_LLM_MODEL names a pulled model (ollama pull <model>)"
	case errors.Is(err, ErrInvalidOutput):
		return "the model's answer was not a usable timetable; try again or import the workbook instead"
	default:
		return ""
	}
}
