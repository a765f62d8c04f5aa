package relay

import "errors"

var (
	// the user has no free queries left today and no paid credits; a normal
	// outcome that the API layer maps to a payment-required response
	ErrAllowanceExhausted = errors.New("relay: query allowance exhausted")

	// the remote model call failed (timeout, rate limit, malformed
	// response); the allowance was not debited
	ErrModelUnavailable = errors.New("relay: model unavailable")
)
