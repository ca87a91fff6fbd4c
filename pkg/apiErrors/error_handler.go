package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Error codes returned to API clients.
const (
	// Authentication / entitlement errors (AUTH_*)
	ErrInvalidToken  = "AUTH_001" // Malformed or expired bearer token
	ErrFeatureLocked = "AUTH_002" // Plan does not allow the requested feature

	// Validation errors (VAL_*)
	ErrInvalidRequest      = "VAL_001" // Request could not be processed as sent
	ErrMissingRequiredData = "VAL_002" // Required field or file absent
	ErrInvalidFormat       = "VAL_003" // Payload present but unparseable

	// Server errors (SRV_*)
	ErrInternalServer = "SRV_001" // Unexpected failure, a defect rather than bad input
)

var httpStatusMap = map[string]int{
	ErrInvalidToken:        http.StatusUnauthorized,
	ErrFeatureLocked:       http.StatusForbidden,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrInternalServer:      http.StatusInternalServerError,
}

// APIError is the standard error payload of the API.
type APIError struct {
	Code    string `json:"code"`              // Machine-readable error code
	Message string `json:"message,omitempty"` // Human-readable description
	Details any    `json:"details,omitempty"` // Optional extra context
}

// WriteError writes the standardized error payload to the HTTP response.
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError builds an APIError out of a plain Go error.
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "unknown error",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
