package clickup

import (
	"fmt"
	"net/http"

	"github.com/go-faster/errors"
)

// Kind classifies a failed ClickUp call.
type Kind int

const (
	KindUnknown Kind = iota
	KindMissingCredential
	KindAuthenticationFailed
	KindNotFound
	KindAccessDenied
	KindRateLimited
	KindUpstream
	KindTimeout
	KindRequestFailed
)

// String returns a stable snake_case name, suitable as a metric label.
func (k Kind) String() string {
	switch k {
	case KindMissingCredential:
		return "missing_credential"
	case KindAuthenticationFailed:
		return "authentication_failed"
	case KindNotFound:
		return "not_found"
	case KindAccessDenied:
		return "access_denied"
	case KindRateLimited:
		return "rate_limited"
	case KindUpstream:
		return "upstream_error"
	case KindTimeout:
		return "timeout"
	case KindRequestFailed:
		return "request_failed"
	default:
		return "unknown"
	}
}

// Error is returned by every failing Client call. Its message is the text
// shown to the calling agent, so it is written for a human reader.
type Error struct {
	Kind Kind

	// Endpoint is the expanded request path, e.g. "/list/123".
	Endpoint string

	// Status and Body are set for non-2xx responses.
	Status int
	Body   string

	// RetryAfter holds the raw Retry-After header of a 429 response.
	RetryAfter string

	// Err is the underlying transport or decoding failure, if any.
	Err error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindMissingCredential:
		return "CLICKUP_API_KEY environment variable is not set. " +
			"Please set your ClickUp Personal API Token: " +
			"export CLICKUP_API_KEY='your_token_here'"
	case KindAuthenticationFailed:
		return "Authentication failed. Please check your CLICKUP_API_KEY. " +
			"You can generate a new token at: " +
			"https://app.clickup.com/settings/apps"
	case KindNotFound:
		return fmt.Sprintf("Resource not found: %s. "+
			"Please verify the ID is correct and you have access to this resource.", e.Endpoint)
	case KindAccessDenied:
		return fmt.Sprintf("Access denied to %s. "+
			"Please check your permissions for this resource.", e.Endpoint)
	case KindRateLimited:
		return "Rate limit exceeded. Please wait a moment and try again. " +
			"ClickUp API has rate limits to protect service quality."
	case KindUpstream:
		return fmt.Sprintf("ClickUp API error (%d): %s", e.Status, e.Body)
	case KindTimeout:
		return fmt.Sprintf("Request to %s timed out. Please try again.", e.Endpoint)
	case KindRequestFailed:
		if e.Err != nil {
			return fmt.Sprintf("Request to %s failed: %v", e.Endpoint, e.Err)
		}
		return fmt.Sprintf("Request to %s failed", e.Endpoint)
	default:
		if e.Err != nil {
			return e.Err.Error()
		}
		return "unknown ClickUp error"
	}
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the Kind of the first *Error in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// classifyStatus maps a non-2xx response to an error. Only the status code
// is consulted.
func classifyStatus(status int, endpoint, body, retryAfter string) *Error {
	e := &Error{Endpoint: endpoint, Status: status}
	switch status {
	case http.StatusUnauthorized:
		e.Kind = KindAuthenticationFailed
	case http.StatusForbidden:
		e.Kind = KindAccessDenied
	case http.StatusNotFound:
		e.Kind = KindNotFound
	case http.StatusTooManyRequests:
		e.Kind = KindRateLimited
		e.RetryAfter = retryAfter
	default:
		e.Kind = KindUpstream
		e.Body = body
	}
	return e
}
