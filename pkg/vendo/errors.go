package vendo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// ErrorKind classifies why a remote call failed. The set is closed: every
// failure the transport can produce maps to exactly one kind.
type ErrorKind string

const (
	// KindAuthentication covers 401 and 403 responses.
	KindAuthentication ErrorKind = "authentication"

	// KindNotFound covers 404 responses.
	KindNotFound ErrorKind = "not_found"

	// KindValidation covers 422 responses carrying validation detail.
	KindValidation ErrorKind = "validation"

	// KindRateLimited covers 429 responses.
	KindRateLimited ErrorKind = "rate_limited"

	// KindServerError covers all 5xx responses.
	KindServerError ErrorKind = "server_error"

	// KindNetwork covers timeouts, connection failures, and DNS failures.
	KindNetwork ErrorKind = "network"

	// KindCanceled marks a call aborted by the caller's context.
	KindCanceled ErrorKind = "canceled"

	// KindUnknown covers everything else.
	KindUnknown ErrorKind = "unknown"
)

// Error is the classified form of a failed API call. Created once at the
// transport boundary and never mutated.
type Error struct {
	Kind       ErrorKind
	Message    string
	HTTPStatus int

	retryable bool
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.HTTPStatus > 0 {
		return fmt.Sprintf("%s: %s (status %d)", e.Kind, e.Message, e.HTTPStatus)
	}

	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Retryable reports whether the transport may re-attempt the request.
func (e *Error) Retryable() bool {
	return e.retryable
}

// NewError creates an Error with the retry eligibility implied by its kind.
func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message, retryable: kindRetryable(kind)}
}

func newStatusError(kind ErrorKind, status int, message string) *Error {
	return &Error{Kind: kind, Message: message, HTTPStatus: status, retryable: kindRetryable(kind)}
}

// Only rate limits, server errors, and network failures are eligible for
// automatic re-attempt under backoff.
func kindRetryable(kind ErrorKind) bool {
	switch kind {
	case KindRateLimited, KindServerError, KindNetwork:
		return true
	default:
		return false
	}
}

// apiErrorBody is the error envelope returned by the Vendo API. Detail is
// kept raw because validation responses nest structured field errors in it.
type apiErrorBody struct {
	Error  string          `json:"error"`
	Detail json.RawMessage `json:"detail"`
}

// ClassifyStatus maps a non-2xx HTTP status and its response body to exactly
// one Error. Pure: no I/O, total over all inputs.
func ClassifyStatus(status int, body []byte) *Error {
	message := errorMessage(status, body)

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return newStatusError(KindAuthentication, status, message)
	case status == http.StatusNotFound:
		return newStatusError(KindNotFound, status, message)
	case status == http.StatusUnprocessableEntity:
		return newStatusError(KindValidation, status, message)
	case status == http.StatusTooManyRequests:
		return newStatusError(KindRateLimited, status, message)
	case status >= http.StatusInternalServerError:
		return newStatusError(KindServerError, status, message)
	default:
		return newStatusError(KindUnknown, status, message)
	}
}

// ClassifyTransportError maps a transport-level failure (no HTTP response) to
// exactly one Error. Context cancellation is distinguished from timeouts:
// only the former is Canceled.
func ClassifyTransportError(err error) *Error {
	switch {
	case errors.Is(err, context.Canceled):
		return NewError(KindCanceled, "request canceled")
	case errors.Is(err, context.DeadlineExceeded):
		return NewError(KindNetwork, "request timed out")
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return NewError(KindNetwork, "request timed out: "+netErr.Error())
	}

	return NewError(KindNetwork, err.Error())
}

// errorMessage extracts the server's human-readable message from an error
// body, falling back to the status text.
func errorMessage(status int, body []byte) string {
	var payload apiErrorBody
	if len(body) > 0 && json.Unmarshal(body, &payload) == nil {
		detail := ""

		if len(payload.Detail) > 0 {
			var s string
			if json.Unmarshal(payload.Detail, &s) == nil {
				detail = s
			} else {
				detail = string(payload.Detail)
			}
		}

		switch {
		case payload.Error != "" && detail != "":
			return payload.Error + ": " + detail
		case detail != "":
			return detail
		case payload.Error != "":
			return payload.Error
		}
	}

	if text := http.StatusText(status); text != "" {
		return text
	}

	return fmt.Sprintf("unexpected status %d", status)
}

// IsKind checks whether err is a classified Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind == kind
	}

	return false
}

// IsNotFound checks if the error marks a missing remote resource.
func IsNotFound(err error) bool {
	return IsKind(err, KindNotFound)
}

// IsUnauthorized checks if the error marks an authentication failure.
func IsUnauthorized(err error) bool {
	return IsKind(err, KindAuthentication)
}

// Static errors for precondition violations. These are raised directly, not
// wrapped in a Result, because they are caller bugs rather than remote
// conditions.
var (
	ErrConfigRequired     = errors.New("config is required")
	ErrTokenRequired      = errors.New("access token is required")
	ErrUnknownEnvironment = errors.New("unknown environment")
	ErrNoMoreItems        = errors.New("no more items")
)
