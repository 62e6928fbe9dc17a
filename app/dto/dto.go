package dto

// APIResponse is the uniform envelope for every endpoint. RequestID echoes
// the X-Request-ID header so console clients can correlate failures.
type APIResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
	Data      any    `json:"data,omitempty" validate:"omitempty"`
	Error     any    `json:"error,omitempty" validate:"omitempty"`
}

// ErrorDetail represents error details in API responses
type ErrorDetail struct {
	Code    string `json:"code"`
	Details any    `json:"details,omitempty" validate:"omitempty"`
}
