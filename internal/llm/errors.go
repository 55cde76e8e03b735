package llm

import "errors"

var (
	// ErrMissingCredential indicates no API key was available when the
	// client was constructed.
	ErrMissingCredential = errors.New("llm credential missing")

	// ErrUnavailable indicates the generation service could not be reached
	// or answered with a server-side failure.
	ErrUnavailable = errors.New("llm service unavailable")

	// ErrTimeout indicates the LLM request exceeded the configured timeout.
	ErrTimeout = errors.New("llm request timed out")

	// ErrEmptyResponse indicates the service answered without any text.
	ErrEmptyResponse = errors.New("llm returned empty response")

	// ErrInvalidOutput indicates the LLM response could not be parsed
	// into the expected structured format.
	ErrInvalidOutput = errors.New("invalid llm output format")
)

// ErrorCode maps an error to the short code used in logs, metrics and the
// run history.
func ErrorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingCredential):
		return "MISSING_CREDENTIAL"
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrEmptyResponse):
		return "EMPTY_RESPONSE"
	case errors.Is(err, ErrInvalidOutput):
		return "INVALID_OUTPUT"
	default:
		return "UNKNOWN"
	}
}
