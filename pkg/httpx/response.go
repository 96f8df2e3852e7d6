package httpx

import (
	"encoding/json"
	"net/http"
)

// Envelope statuses. Client-caused failures (4xx) use "fail", server faults
// (5xx) use "error", everything else "success".
const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

// Envelope is the uniform JSON response body for every endpoint.
type Envelope struct {
	Status  string `json:"status"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// WriteJSON writes a JSON response with the given status code.
// It automatically sets the Content-Type header.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteSuccess wraps data in a success envelope.
func WriteSuccess(w http.ResponseWriter, code int, data any) {
	WriteJSON(w, code, Envelope{Status: StatusSuccess, Data: data})
}

// WriteFail reports an anticipated client-caused failure (4xx).
func WriteFail(w http.ResponseWriter, code int, message string) {
	WriteJSON(w, code, Envelope{Status: StatusFail, Message: message})
}

// WriteError reports a server fault (5xx).
func WriteError(w http.ResponseWriter, code int, message string) {
	WriteJSON(w, code, Envelope{Status: StatusError, Message: message})
}
