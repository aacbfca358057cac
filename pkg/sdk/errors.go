package foliodex

import (
	"encoding/json"
	"fmt"
)

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("foliodex: %s (%s, HTTP %d)", e.Message, e.Code, e.StatusCode)
	}
	return fmt.Sprintf("foliodex: HTTP %d", e.StatusCode)
}

// IsNotFound reports whether the error is a 404 response.
func (e *APIError) IsNotFound() bool { return e.StatusCode == 404 }

func apiErrorFromResponse(status int, body []byte) error {
	apiErr := &APIError{StatusCode: status}

	var parsed struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &parsed) == nil {
		apiErr.Code = parsed.Code
		apiErr.Message = parsed.Message
	}
	return apiErr
}
