package dashsdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

const (
	ErrorCodeNoSession       = "No session"
	ErrorCodeValidation      = "validation_error"
	ErrorCodeInvalidRequest  = "invalid_request"
	ErrorCodeForbidden       = "forbidden"
	ErrorCodeNotFound        = "not_found"
	ErrorCodeConflict        = "conflict"
	ErrorCodeRateLimited     = "rate_limit_exceeded"
	ErrorCodeInvalidLogin    = "invalid_credentials"
	ErrorCodeServerError     = "server_error"
	ErrorCodePasswordsDiffer = "passwords_do_not_match"
)

// ErrPasswordsDiffer is returned by ChangePassword before any request is made
// when the confirmation does not match.
var ErrPasswordsDiffer = errors.New("dashsdk: passwords do not match")

// APIError is a non-2xx response from the dashboard.
type APIError struct {
	StatusCode int
	Code       string
	Details    map[string]string
}

func (e *APIError) Error() string {
	if len(e.Details) == 0 {
		return fmt.Sprintf("dashsdk: %d %s", e.StatusCode, e.Code)
	}
	fields := make([]string, 0, len(e.Details))
	for k, v := range e.Details {
		fields = append(fields, k+" "+v)
	}
	sort.Strings(fields)
	return fmt.Sprintf("dashsdk: %d %s (%s)", e.StatusCode, e.Code, strings.Join(fields, "; "))
}

// IsUnauthenticated reports whether err means the session is missing or gone.
func IsUnauthenticated(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// IsForbidden reports whether err is a role check failure.
func IsForbidden(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusForbidden
}

func parseErrorResponse(resp *http.Response, body []byte) error {
	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{StatusCode: resp.StatusCode, Code: errResp.Error, Details: errResp.Details}
	}
	return &APIError{
		StatusCode: resp.StatusCode,
		Code:       ErrorCodeServerError,
		Details:    map[string]string{"status": http.StatusText(resp.StatusCode)},
	}
}
