// Package gemini provides clients for the generateContent endpoint: a plain
// REST client and one backed by the genai SDK. Both report non-success
// responses as *StatusError.
package gemini

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// StatusError is returned when the service answers with a non-success status.
type StatusError struct {
	Code   int
	Reason string

	// Details is the decoded error body when it was valid JSON.
	Details any

	// Raw is the body text when it could not be decoded.
	Raw string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream returned %d %s", e.Code, e.Reason)
}

// DetailsJSON renders Details as compact JSON, or "" when there are none.
func (e *StatusError) DetailsJSON() string {
	if e.Details == nil {
		return ""
	}
	data, err := json.Marshal(e.Details)
	if err != nil {
		return fmt.Sprint(e.Details)
	}
	return string(data)
}

func newStatusError(resp *http.Response, body []byte) *StatusError {
	e := &StatusError{
		Code:   resp.StatusCode,
		Reason: reasonPhrase(resp),
	}

	var details any
	if err := json.Unmarshal(body, &details); err == nil && details != nil {
		e.Details = details
	} else {
		e.Raw = string(body)
	}
	return e
}

// reasonPhrase extracts the reason from the status line, falling back to the
// canonical text for the code.
func reasonPhrase(resp *http.Response) string {
	reason := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if reason == "" {
		reason = http.StatusText(resp.StatusCode)
	}
	return reason
}
