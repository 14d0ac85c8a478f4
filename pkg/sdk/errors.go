package sdk

import (
	"fmt"

	"github.com/africanmarketos/amos-sdk-go/pkg/model"
)

// APIError is a failure reported by the AMOS gateway itself: a non-2xx
// status with the error envelope the service returned. The envelope is
// surfaced verbatim; ErrorData.RequestID correlates the failure with
// gateway logs for support. Undecodable error bodies are wrapped into a
// synthesized envelope so callers always get a structured value.
type APIError struct {
	StatusCode int
	ErrorData  model.ErrorResponse
}

func (e *APIError) Error() string {
	msg := e.ErrorData.Error
	if msg == "" {
		msg = "AMOS API error"
	}
	if e.ErrorData.RequestID != "" {
		return fmt.Sprintf("amos: api error (status %d): %s (request_id %s)", e.StatusCode, msg, e.ErrorData.RequestID)
	}
	return fmt.Sprintf("amos: api error (status %d): %s", e.StatusCode, msg)
}

// TransportError is a network-level failure: timeout, DNS, connection
// refused, or an unreadable response body. The request may or may not have
// reached the gateway. The SDK never retries on its own; retrying is the
// caller's call.
type TransportError struct {
	// Op names the operation that failed ("score" or "health").
	Op string
	// Timeout is set when the failure was the configured deadline expiring.
	Timeout bool
	Err     error
}

func (e *TransportError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("amos: %s: request timed out: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("amos: %s: transport failure: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodingError is a 2xx response whose body violates the expected
// contract: a type mismatch or a missing required field. It signals
// contract drift between SDK and gateway and is always surfaced, never
// papered over with a partially populated object.
type DecodingError struct {
	// What names the payload that failed to decode.
	What string
	Err  error
}

func (e *DecodingError) Error() string {
	return fmt.Sprintf("amos: cannot decode %s: %v", e.What, e.Err)
}

func (e *DecodingError) Unwrap() error { return e.Err }
