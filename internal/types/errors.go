package types

import "fmt"

// Error represents an API error
type Error struct {
	Code       string                 `json:"code"`
	Message    string                 `json:"message"`
	StatusCode int                    `json:"statusCode"`
	Details    map[string]interface{} `json:"details,omitempty"`
	RequestID  string                 `json:"requestId,omitempty"`
	Err        error                  `json:"-"`
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("error: %s", e.Code)
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// PostgrestError is the error body PostgREST returns on 4xx/5xx responses
type PostgrestError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
	// Error is set by gateways that answer before PostgREST does
	Error string `json:"error"`
}

// Text returns the most descriptive message in the body
func (e *PostgrestError) Text() string {
	msg := e.Message
	if msg == "" {
		msg = e.Error
	}
	if e.Hint != "" {
		if msg == "" {
			return e.Hint
		}
		return fmt.Sprintf("%s (%s)", msg, e.Hint)
	}
	return msg
}
