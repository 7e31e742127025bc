// Package apierr defines the error taxonomy shared by every docatom
// operation. All failures surface as *Error with a Kind discriminant so
// callers can branch on the failure class without string matching.
package apierr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Kind identifies the class of a client failure.
type Kind string

const (
	// KindConfiguration indicates an invalid endpoint or client configuration.
	KindConfiguration Kind = "configuration"

	// KindValidation indicates malformed caller input detected before any
	// network call (missing filename, unsupported format tag).
	KindValidation Kind = "validation"

	// KindFileNotFound indicates a path input that does not exist or is not
	// readable.
	KindFileNotFound Kind = "file_not_found"

	// KindConnection indicates a network-level failure reaching the server
	// (DNS, refused connection, reset).
	KindConnection Kind = "connection"

	// KindTimeout indicates the configured timeout elapsed without a response.
	KindTimeout Kind = "timeout"

	// KindAuthentication maps HTTP 401.
	KindAuthentication Kind = "authentication"

	// KindAuthorization maps HTTP 403.
	KindAuthorization Kind = "authorization"

	// KindNotFound maps HTTP 404.
	KindNotFound Kind = "not_found"

	// KindBadRequest maps HTTP 400.
	KindBadRequest Kind = "bad_request"

	// KindServer maps HTTP 5xx.
	KindServer Kind = "server"

	// KindAPI is the catch-all for any other non-2xx response.
	KindAPI Kind = "api"
)

// Descriptions gives a short human-readable description per kind, used by the
// CLI when reporting failures.
var Descriptions = map[Kind]string{
	KindConfiguration:  "invalid client configuration",
	KindValidation:     "invalid request input",
	KindFileNotFound:   "file does not exist or is not readable",
	KindConnection:     "could not reach the server",
	KindTimeout:        "request timed out",
	KindAuthentication: "authentication failed",
	KindAuthorization:  "permission denied",
	KindNotFound:       "resource not found",
	KindBadRequest:     "malformed request",
	KindServer:         "server error",
	KindAPI:            "API request failed",
}

// Error is the single error type returned by the docatom client. StatusCode
// is zero for failures that never produced an HTTP response.
type Error struct {
	Kind       Kind
	Message    string
	StatusCode int

	err error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s (status %d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.err
}

// New returns an Error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf returns an Error of the given kind with a formatted message.
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap returns an Error of the given kind that wraps cause. The cause remains
// reachable via errors.Unwrap / errors.Is.
func Wrap(kind Kind, cause error, message string) *Error {
	return &Error{Kind: kind, Message: message, err: cause}
}

// Is reports whether err is (or wraps) an *Error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// KindOf returns the kind of err, or empty string if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// errorBody is the JSON shape the server uses for non-2xx responses.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// FromStatus translates a non-2xx HTTP response into an Error. The mapping is
// deterministic: 400 bad_request, 401 authentication, 403 authorization,
// 404 not_found, 5xx server, anything else api. The response body contributes
// the message when it decodes as the server's error shape.
func FromStatus(status int, body []byte) *Error {
	var kind Kind
	switch {
	case status == http.StatusBadRequest:
		kind = KindBadRequest
	case status == http.StatusUnauthorized:
		kind = KindAuthentication
	case status == http.StatusForbidden:
		kind = KindAuthorization
	case status == http.StatusNotFound:
		kind = KindNotFound
	case status >= 500:
		kind = KindServer
	default:
		kind = KindAPI
	}

	message := messageFromBody(body)
	if message == "" {
		message = http.StatusText(status)
	}
	if message == "" {
		message = Descriptions[kind]
	}

	return &Error{Kind: kind, Message: message, StatusCode: status}
}

func messageFromBody(body []byte) string {
	if len(body) == 0 {
		return ""
	}

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		if eb.Error != "" {
			return eb.Error
		}
		if eb.Message != "" {
			return eb.Message
		}
	}

	// Fall back to the raw body, truncated so log lines stay sane.
	const maxRaw = 512
	raw := string(body)
	if len(raw) > maxRaw {
		raw = raw[:maxRaw]
	}
	return raw
}
