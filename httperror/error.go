package httperror

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// MaxBodyBytes is the maximum number of response body bytes captured
// into E.Body by FromResponse.  Bodies beyond this size are truncated.
const MaxBodyBytes = 1 << 20

// Kind identifies a member of the closed set of service response errors.
// The zero value is ServiceResponse, the generic catch-all.
type Kind int

const (
	// ServiceResponse is the generic service error used for any status code
	// not covered by a more specific Kind.
	ServiceResponse Kind = iota

	// BadRequest is a 400 (HTTP/1.1 - RFC 7231)
	BadRequest

	// Forbidden is a 403 (HTTP/1.1 - RFC 7231)
	Forbidden

	// NotFound is a 404 (HTTP/1.1 - RFC 7231)
	NotFound

	// Conflict is a 409 (HTTP/1.1 - RFC 7231)
	Conflict

	// RequestTooLarge is a 413 (HTTP/1.1 - RFC 7231)
	RequestTooLarge

	// UnsupportedMediaType is a 415 (HTTP/1.1 - RFC 7231)
	UnsupportedMediaType

	// TooManyRequests is a 429 (RFC 6585)
	TooManyRequests

	// InternalServerError covers 5xx codes other than 503
	InternalServerError

	// ServiceUnavailable is a 503 (HTTP/1.1 - RFC 7231)
	ServiceUnavailable
)

var kindNames = map[Kind]string{
	ServiceResponse:      "ServiceResponse",
	BadRequest:           "BadRequest",
	Forbidden:            "Forbidden",
	NotFound:             "NotFound",
	Conflict:             "Conflict",
	RequestTooLarge:      "RequestTooLarge",
	UnsupportedMediaType: "UnsupportedMediaType",
	TooManyRequests:      "TooManyRequests",
	InternalServerError:  "InternalServerError",
	ServiceUnavailable:   "ServiceUnavailable",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return "ServiceResponse"
}

// E is an HTTP-specific carrier of error information for a failed service
// call.  In addition to implementing error, this type implements go-kit's
// StatusCoder and Headerer.  The json.Marshaler interface is implemented so
// that an E always serializes as a JSON message.
//
// An E is constructed once per failed call and is immutable by convention.
type E struct {
	Kind    Kind
	Code    int
	Message string
	Header  http.Header
	Body    []byte
}

func (e *E) Error() string {
	return e.Message
}

func (e *E) StatusCode() int {
	return e.Code
}

func (e *E) Headers() http.Header {
	return e.Header
}

func (e *E) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}{
		Code:    e.Code,
		Message: e.Message,
	})
}

// KindOf returns the Kind for an arbitrary integer status code.  This
// function is total: every integer yields a defined Kind, with anything
// unrecognized yielding ServiceResponse.
func KindOf(code int) Kind {
	switch code {
	case http.StatusBadRequest:
		return BadRequest
	case http.StatusForbidden:
		return Forbidden
	case http.StatusNotFound:
		return NotFound
	case http.StatusConflict:
		return Conflict
	case http.StatusRequestEntityTooLarge:
		return RequestTooLarge
	case http.StatusUnsupportedMediaType:
		return UnsupportedMediaType
	case http.StatusTooManyRequests:
		return TooManyRequests
	case http.StatusServiceUnavailable:
		return ServiceUnavailable
	}

	if code >= 500 && code < 600 {
		return InternalServerError
	}

	return ServiceResponse
}

// FromStatus constructs an E for the given status code and message.  The
// code is mapped onto a Kind via KindOf.  An empty message falls back to
// http.StatusText, so the error is never silent.
func FromStatus(code int, message string) *E {
	if len(message) == 0 {
		message = http.StatusText(code)
	}

	return &E{
		Kind:    KindOf(code),
		Code:    code,
		Message: message,
	}
}

// FromResponse constructs an E from a failed HTTP response, capturing the
// response headers and up to MaxBodyBytes of the body for diagnostics.
// The response body is drained but not closed; closing remains the
// caller's responsibility.
func FromResponse(response *http.Response, message string) *E {
	e := FromStatus(response.StatusCode, message)
	e.Header = response.Header

	if response.Body != nil {
		// a read error here must not mask the original failure
		body, err := io.ReadAll(io.LimitReader(response.Body, MaxBodyBytes))
		if err == nil {
			e.Body = body
		}
	}

	return e
}

// IsKind tests whether err is (or wraps) an E of the given Kind.
func IsKind(err error, k Kind) bool {
	var e *E
	return errors.As(err, &e) && e.Kind == k
}
