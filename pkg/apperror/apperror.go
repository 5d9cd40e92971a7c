// Package apperror defines the closed set of error variants that the HTTP
// layer knows how to render. Business code raises these at the point where
// a failure crosses into the delivery layer; everything else is treated as
// an internal error and its detail is never exposed to clients.
package apperror

import "fmt"

// HTTPError is an error deliberately raised by application code carrying an
// explicit HTTP status and a message that is safe to show to clients.
type HTTPError struct {
	StatusCode int
	Message    string
}

// New creates an HTTPError with the given status code and client-safe message.
func New(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// Newf creates an HTTPError with a formatted client-safe message.
func Newf(statusCode int, format string, args ...any) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: fmt.Sprintf(format, args...)}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
}

// FieldDetail describes a single field-level validation failure.
type FieldDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries per-field failure details for caller-supplied
// data that failed schema checks. Details are rendered to the client
// verbatim to aid correction.
type ValidationError struct {
	Details []FieldDetail
}

// NewValidation creates a ValidationError from field-level details.
func NewValidation(details []FieldDetail) *ValidationError {
	return &ValidationError{Details: details}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error (%d fields)", len(e.Details))
}

// ValidStatus reports whether code is inside the renderable HTTP range.
// Application errors outside it are downgraded to 500 by the responder
// instead of producing a malformed response.
func ValidStatus(code int) bool {
	return code >= 100 && code <= 599
}
