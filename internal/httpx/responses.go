package httpx

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the envelope every 4xx/5xx body uses.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// JSON writes v as a JSON response with the given status code.
func JSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes the uniform error envelope.
func Error(w http.ResponseWriter, statusCode int, description string) {
	JSON(w, statusCode, ErrorResponse{
		Error:            "Error!",
		ErrorDescription: description,
	})
}
