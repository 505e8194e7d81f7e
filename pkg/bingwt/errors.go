package bingwt

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorKind identifies one member of the closed error taxonomy. Every
// failure surfaced by this module is an *Error carrying exactly one kind.
type ErrorKind string

const (
	// KindConfiguration: missing or malformed credential/configuration at
	// construction time. Never retried.
	KindConfiguration ErrorKind = "configuration"

	// KindAuthentication: HTTP 401/403 or an API error code that rejects
	// the credential. Never retried.
	KindAuthentication ErrorKind = "authentication"

	// KindValidation: malformed caller input detected before send, or
	// HTTP 400. Never retried.
	KindValidation ErrorKind = "validation"

	// KindNotFound: HTTP 404 or an API "not found" payload.
	KindNotFound ErrorKind = "not_found"

	// KindRateLimit: HTTP 429 surfaced after bounded retries.
	KindRateLimit ErrorKind = "rate_limit"

	// KindTransient: HTTP 5xx or a network-level failure. Retried with
	// bounded exponential backoff before surfacing.
	KindTransient ErrorKind = "transient"

	// KindDecode: response body does not match the expected shape.
	KindDecode ErrorKind = "decode"

	// KindUnknownAPI: an API-embedded error code not otherwise classified.
	KindUnknownAPI ErrorKind = "unknown_api"
)

// API error codes embedded in vendor error payloads.
const (
	APICodeNone             = 0
	APICodeInternalError    = 1
	APICodeInvalidAPIKey    = 2
	APICodeInvalidParameter = 3
	APICodeInvalidURL       = 4
	APICodeNotAllowed       = 5
	APICodeNotAuthorized    = 6
	APICodeNotFound         = 7
	APICodeThrottleHost     = 8
	APICodeThrottleUser     = 9
	APICodeUserBlocked      = 10
)

// Error is the root type of the taxonomy. Callers can match broadly with
// errors.As(*Error) or narrowly with the Is* helpers.
type Error struct {
	Kind       ErrorKind
	StatusCode int
	APICode    int
	Message    string
	Err        error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString(string(e.Kind))

	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}

	if e.StatusCode != 0 {
		fmt.Fprintf(&b, " (status: %d)", e.StatusCode)
	}

	if e.APICode != 0 {
		fmt.Fprintf(&b, " (api code: %d)", e.APICode)
	}

	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}

	return b.String()
}

// Unwrap exposes the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Static sentinel errors.
var (
	ErrConfigRequired = errors.New("config is required")
	ErrClientClosed   = errors.New("client is closed")
	ErrNoMoreItems    = errors.New("no more items")
)

// ValidationErrorf builds a validation-kind error from a format string.
// Used for caller-input failures detected before any request is sent.
func ValidationErrorf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// ConfigurationErrorf builds a configuration-kind error.
func ConfigurationErrorf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindConfiguration, Message: fmt.Sprintf(format, args...)}
}

// apiErrorPayload is the vendor's embedded error body.
type apiErrorPayload struct {
	ErrorCode int    `json:"ErrorCode"`
	Message   string `json:"Message"`
}

// ClassifyResponse turns a non-2xx response into a typed error. The retry
// policy has already run by the time this is called, so 429 classifies as
// rate-limit and 5xx as transient, both final.
func ClassifyResponse(statusCode int, body []byte) *Error {
	payload := parseAPIError(body)

	e := &Error{
		StatusCode: statusCode,
		APICode:    payload.ErrorCode,
		Message:    payload.Message,
	}
	if e.Message == "" {
		e.Message = http.StatusText(statusCode)
	}

	if kind, ok := classifyAPICode(payload.ErrorCode); ok {
		e.Kind = kind

		return e
	}

	switch {
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		e.Kind = KindAuthentication
	case statusCode == http.StatusNotFound:
		e.Kind = KindNotFound
	case statusCode == http.StatusTooManyRequests:
		e.Kind = KindRateLimit
	case statusCode == http.StatusBadRequest:
		e.Kind = KindValidation
	case statusCode >= 500:
		e.Kind = KindTransient
	default:
		e.Kind = KindUnknownAPI
	}

	return e
}

// classifyAPICode maps a vendor error code to a taxonomy kind. The vendor
// reports most application errors with HTTP 400, so the embedded code takes
// precedence over the status line.
func classifyAPICode(code int) (ErrorKind, bool) {
	switch code {
	case APICodeInvalidAPIKey, APICodeNotAuthorized, APICodeUserBlocked:
		return KindAuthentication, true
	case APICodeInvalidParameter, APICodeInvalidURL, APICodeNotAllowed:
		return KindValidation, true
	case APICodeNotFound:
		return KindNotFound, true
	case APICodeThrottleHost, APICodeThrottleUser:
		return KindRateLimit, true
	case APICodeInternalError:
		return KindTransient, true
	default:
		return "", false
	}
}

// parseAPIError extracts the vendor error payload from a response body.
// Error bodies may arrive bare or wrapped in the usual "d" envelope.
func parseAPIError(body []byte) apiErrorPayload {
	var payload apiErrorPayload

	if len(body) == 0 {
		return payload
	}

	if err := json.Unmarshal(body, &payload); err == nil && (payload.ErrorCode != 0 || payload.Message != "") {
		return payload
	}

	var wrapped struct {
		D apiErrorPayload `json:"d"`
	}
	if err := json.Unmarshal(body, &wrapped); err == nil {
		return wrapped.D
	}

	return payload
}

// KindOf returns the taxonomy kind of err, or false if err is not part of
// the taxonomy.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}

	return "", false
}

func isKind(err error, kind ErrorKind) bool {
	got, ok := KindOf(err)

	return ok && got == kind
}

// IsConfiguration checks if the error is a configuration error.
func IsConfiguration(err error) bool { return isKind(err, KindConfiguration) }

// IsAuthentication checks if the error is an authentication error.
func IsAuthentication(err error) bool { return isKind(err, KindAuthentication) }

// IsValidation checks if the error is a validation error.
func IsValidation(err error) bool { return isKind(err, KindValidation) }

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool { return isKind(err, KindNotFound) }

// IsRateLimit checks if the error is a rate limit error.
func IsRateLimit(err error) bool { return isKind(err, KindRateLimit) }

// IsTransient checks if the error is a transient server/network error.
func IsTransient(err error) bool { return isKind(err, KindTransient) }

// IsDecode checks if the error is a response decode error.
func IsDecode(err error) bool { return isKind(err, KindDecode) }
