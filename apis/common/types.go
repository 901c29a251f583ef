package common

// ErrorResponse represents the uniform wire shape for every failed request.
// Any error raised inside a handler is converted to this body by the
// app-level error handler; callers treat the content as opaque.
type ErrorResponse struct {
	// Error contains the error message text
	Error string `json:"error"`
}
