package llm

import (
	"errors"
	"fmt"
)

// Error classes. Every error returned by a client or by ExtractJSON matches
// exactly one of these with errors.Is.
var (
	// ErrConfiguration indicates no usable provider configuration or credential.
	ErrConfiguration = errors.New("llm configuration error")

	// ErrProvider indicates the provider answered but the content was missing
	// or did not match the requested shape.
	ErrProvider = errors.New("llm provider error")

	// ErrTransport indicates the call could not complete.
	ErrTransport = errors.New("llm transport error")
)

var (
	ErrMissingCredential = fmt.Errorf("%w: no api key found", ErrConfiguration)
	ErrUnknownProvider   = fmt.Errorf("%w: unknown provider", ErrConfiguration)

	// ErrEmptyResponse indicates the provider returned no text.
	ErrEmptyResponse = fmt.Errorf("%w: empty response", ErrProvider)

	// ErrInvalidOutput indicates the response could not be parsed into the
	// expected structured format.
	ErrInvalidOutput = fmt.Errorf("%w: invalid output format", ErrProvider)

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = fmt.Errorf("%w: request timed out", ErrTransport)

	// ErrUnavailable indicates the provider endpoint is unreachable.
	ErrUnavailable = fmt.Errorf("%w: provider unavailable", ErrTransport)
)

// ErrorClass names the class of err for logs: "configuration", "provider",
// "transport" or "unknown".
func ErrorClass(err error) string {
	switch {
	case errors.Is(err, ErrConfiguration):
		return "configuration"
	case errors.Is(err, ErrProvider):
		return "provider"
	case errors.Is(err, ErrTransport):
		return "transport"
	default:
		return "unknown"
	}
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingCredential):
		return "NO_CREDENTIAL"
	case errors.Is(err, ErrConfiguration):
		return "CONFIG"
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrEmptyResponse):
		return "EMPTY"
	case errors.Is(err, ErrInvalidOutput):
		return "INVALID_OUTPUT"
	case errors.Is(err, ErrTransport):
		return "TRANSPORT"
	default:
		return "UNKNOWN"
	}
}
