package response

import (
	"encoding/json"
	"net/http"
)

// Result is the success envelope returned by the contact and waitlist
// operations.
type Result struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	AlreadyExists bool   `json:"alreadyExists,omitempty"`
	Timestamp     string `json:"timestamp"`
}

// ErrorBody is the failure envelope. Detail carries the underlying error text
// and is populated only in development mode.
type ErrorBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Detail  string `json:"detail,omitempty"`
}

// JSON writes v as a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError maps an error to the failure envelope. *Error values keep their
// status and message; anything else becomes a generic 500. When dev is true
// the underlying error text is included for debugging.
func WriteError(w http.ResponseWriter, err error, dev bool) {
	status := http.StatusInternalServerError
	body := ErrorBody{Error: "An unexpected error occurred"}

	var httpErr *Error
	if AsError(err, &httpErr) {
		status = httpErr.Status
		body.Error = httpErr.Message
		if dev && httpErr.Unwrap() != nil {
			body.Detail = httpErr.Unwrap().Error()
		}
	} else if dev && err != nil {
		body.Detail = err.Error()
	}

	JSON(w, status, body)
}
