package response

// Resp is the standard JSON response body. Every error response carries
// Success=false and a client-safe Error string; Details is present only
// for validation failures, Data only for successful responses.
type Resp struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Details any    `json:"details,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// Client-facing error messages. Unclassified errors always render
// MessageInternal so internal detail never leaks.
const (
	MessageConflict   = "Resource already exists"
	MessageNotFound   = "Resource not found"
	MessageValidation = "Validation error"
	MessageInternal   = "Internal server error"
)
