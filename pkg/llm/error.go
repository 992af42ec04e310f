// Package llm provides the wire representations of Gemini generateContent
// requests and responses shared by the clients, the session loop and the
// mock server.
package llm

import "errors"

// ErrNoCandidates is returned when a response carries no usable candidate text.
var ErrNoCandidates = errors.New("response has no candidate text")

// ErrorResponse represents an error body from the generateContent API.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail is the payload of an ErrorResponse.
type ErrorDetail struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status,omitempty"`
}
