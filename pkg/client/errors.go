package client

import "fmt"

// APIError represents an error returned by the API
type APIError struct {
	StatusCode int                    `json:"-"`
	Code       string                 `json:"code"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("API error [%s]: %s (status: %d)", e.Code, e.Message, e.StatusCode)
	}
	return fmt.Sprintf("API error: %s (status: %d)", e.Message, e.StatusCode)
}

// IsNotFound returns true for 404 errors
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == 404
}

// IsUnauthorized returns true for 401 errors
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == 401
}

// IsQuotaExceeded returns true when the monthly plan quota blocked the
// request
func (e *APIError) IsQuotaExceeded() bool {
	return e.Code == "QUOTA_EXCEEDED"
}

// IsValidationError returns true for 400 validation errors
func (e *APIError) IsValidationError() bool {
	return e.StatusCode == 400
}

// IsServerError returns true for 5xx errors
func (e *APIError) IsServerError() bool {
	return e.StatusCode >= 500
}
