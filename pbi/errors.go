package pbi

import (
	"encoding/json"
	"fmt"
	"strings"
)

// APIError is a non-2xx reply from the service. Code and Message come from
// the error envelope when the body carries one; RequestID is the value
// Microsoft support asks for when investigating a failed call.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Details    any
	RequestID  string
	Body       string
}

func (e *APIError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "power bi: %d", e.StatusCode)
	if e.Code != "" {
		b.WriteString(" " + e.Code)
	}
	switch {
	case e.Message != "":
		b.WriteString(": " + e.Message)
	case e.Body != "":
		b.WriteString(": " + e.Body)
	}
	if e.RequestID != "" {
		b.WriteString(" (RequestId " + e.RequestID + ")")
	}
	return b.String()
}

// parseAPIError decodes the service error envelope when present:
//
//	{"error": {"code": "...", "message": "...", "details": [...]}}
//
// A few endpoints reply with a flat {"code", "message"} object instead.
func parseAPIError(code int, b []byte) *APIError {
	apiErr := &APIError{StatusCode: code, Body: string(b)}
	type payload struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	}
	var env struct {
		Error *payload `json:"error"`
		payload
	}
	if json.Unmarshal(b, &env) != nil {
		return apiErr
	}
	p := env.payload
	if env.Error != nil {
		p = *env.Error
	}
	apiErr.Code = p.Code
	apiErr.Message = p.Message
	apiErr.Details = p.Details
	return apiErr
}
