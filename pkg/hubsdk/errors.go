package hubsdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError is a non-2xx response from the service, carrying the HTTP
// status and the server's message body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("hubsdk: %d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.Message)
}

// ErrSessionExpired is returned from Session methods once the bearer
// token's validity window has passed. The caller must log in again.
var ErrSessionExpired = errors.New("hubsdk: session expired, log in again")

// parseErrorResponse turns a failed HTTP response body into an *APIError.
func parseErrorResponse(statusCode int, body []byte) error {
	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		return &APIError{StatusCode: statusCode, Message: errResp.Message}
	}
	return &APIError{
		StatusCode: statusCode,
		Message:    http.StatusText(statusCode),
	}
}
