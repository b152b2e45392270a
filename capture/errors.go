package capture

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	json "github.com/json-iterator/go"
)

// ErrorKind identifies the category of a client failure. Call sites branch
// on Kind rather than on concrete error types.
type ErrorKind int

const (
	KindValidation ErrorKind = iota
	KindAuthentication
	KindPermission
	KindNotFound
	KindInsufficientFunds
	KindNoCommits
	KindNetwork
)

// Code returns the stable machine-readable code for the kind. These codes
// match what the platform's other SDKs report.
func (k ErrorKind) Code() string {
	switch k {
	case KindValidation:
		return "VALIDATION_ERROR"
	case KindAuthentication:
		return "AUTHENTICATION_ERROR"
	case KindPermission:
		return "PERMISSION_ERROR"
	case KindNotFound:
		return "NOT_FOUND"
	case KindInsufficientFunds:
		return "INSUFFICIENT_FUNDS"
	case KindNoCommits:
		return "NO_COMMITS"
	case KindNetwork:
		return "NETWORK_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

// Error is the tagged variant carried by every failure the client raises.
// Status is the HTTP status code when one applies (0 for client-side
// validation and transport failures); NID is set when the failure concerns
// a specific asset.
type Error struct {
	Kind    ErrorKind
	Message string
	Status  int
	NID     string
}

func (e *Error) Error() string {
	return e.Kind.Code() + ": " + e.Message
}

// IsKind reports whether err is a capture Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var captureErr *Error
	return errors.As(err, &captureErr) && captureErr.Kind == kind
}

func newValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func newAuthenticationError(message string) *Error {
	if message == "" {
		message = "Invalid or missing authentication token"
	}
	return &Error{Kind: KindAuthentication, Message: message, Status: http.StatusUnauthorized}
}

func newPermissionError(message string) *Error {
	if message == "" {
		message = "Insufficient permissions for this operation"
	}
	return &Error{Kind: KindPermission, Message: message, Status: http.StatusForbidden}
}

func newNotFoundError(nid string) *Error {
	message := "Asset not found"
	if nid != "" {
		message = "Asset not found: " + nid
	}
	return &Error{Kind: KindNotFound, Message: message, Status: http.StatusNotFound, NID: nid}
}

func newInsufficientFundsError(message string) *Error {
	if message == "" {
		message = "Insufficient NUM tokens for this operation"
	}
	return &Error{Kind: KindInsufficientFunds, Message: message, Status: http.StatusBadRequest}
}

func newNoCommitsError(nid string) *Error {
	return &Error{Kind: KindNoCommits, Message: "No commits found for asset", Status: http.StatusNotFound, NID: nid}
}

func newNetworkError(message string, status int) *Error {
	return &Error{Kind: KindNetwork, Message: message, Status: status}
}

// classifyAPIError maps an HTTP outcome to the error taxonomy. Status 0
// means the request never produced a response (DNS, connect, timeout).
// A 400 mentioning insufficient funds is the chain's way of rejecting an
// operation the wallet cannot pay for; every other 400 is a validation
// rejection. Unrecognized statuses surface as network errors with the
// status preserved.
func classifyAPIError(status int, message string, nid string) *Error {
	switch status {
	case http.StatusBadRequest:
		if strings.Contains(strings.ToLower(message), "insufficient") {
			return newInsufficientFundsError(message)
		}
		return newValidationError(message)
	case http.StatusUnauthorized:
		return newAuthenticationError(message)
	case http.StatusForbidden:
		return newPermissionError(message)
	case http.StatusNotFound:
		return newNotFoundError(nid)
	default:
		return newNetworkError(message, status)
	}
}

// extractErrorMessage pulls a human-readable message out of a non-2xx JSON
// body, preferring the API's detail field, then message, then a generic
// line carrying the status.
func extractErrorMessage(body []byte, status int) string {
	fallback := fmt.Sprintf("API request failed with status %d", status)
	var payload struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return fallback
	}
	if payload.Detail != "" {
		return payload.Detail
	}
	if payload.Message != "" {
		return payload.Message
	}
	return fallback
}
