package dto

// ErrorResponse is the stable error shape returned by every handler.
// ValidationErrors is only populated for validation failures.
type ErrorResponse struct {
	ErrorCode        int      `json:"errorCode"`
	ErrorDescription string   `json:"errorDescription"`
	Error            string   `json:"error,omitempty"`
	ValidationErrors []string `json:"validationErrors,omitempty"`
}
