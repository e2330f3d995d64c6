package management

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/marcelsud/webhook-console/webhook"
)

// APIError represents a non-2xx response of the management API
type APIError struct {
	// StatusCode is the HTTP status code
	StatusCode int `json:"-"`

	Message          string            `json:"message"`
	ErrorCode        int               `json:"error_code,omitempty"`
	RequestID        string            `json:"request_id,omitempty"`
	ValidationErrors []ValidationError `json:"validation_errors,omitempty"`
}

// ValidationError is one rejected field of a request body
type ValidationError struct {
	Message string `json:"message"`
	Path    string `json:"path,omitempty"`
}

// Error flattens validation errors into the message
func (e *APIError) Error() string {
	if len(e.ValidationErrors) == 0 {
		return e.Message
	}
	parts := make([]string, 0, len(e.ValidationErrors))
	for _, v := range e.ValidationErrors {
		if v.Path != "" {
			parts = append(parts, v.Path+": "+v.Message)
			continue
		}
		parts = append(parts, v.Message)
	}
	return fmt.Sprintf("%s (%s)", e.Message, strings.Join(parts, "; "))
}

// IsNotFound returns true if the resource does not exist
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// Is lets a remote 404 match webhook.ErrNotFound
func (e *APIError) Is(target error) bool {
	return target == webhook.ErrNotFound && e.IsNotFound()
}

// IsUnauthorized returns true if the API key was rejected
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// parseError parses an error response from the API
func parseError(statusCode int, body []byte) error {
	var apiErr APIError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Message != "" {
		apiErr.StatusCode = statusCode
		return &apiErr
	}

	// Fallback to a status-derived message
	message := strings.TrimSpace(string(body))
	if message == "" || json.Valid(body) {
		message = fmt.Sprintf("management API returned %d %s", statusCode, http.StatusText(statusCode))
	}
	return &APIError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// AsAPIError checks if an error chain carries an APIError and returns it
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
