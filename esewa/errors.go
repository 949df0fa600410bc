package esewa

import "errors"

// Error kinds returned by the package. Callers match them with errors.Is;
// every returned error wraps exactly one of these. A signature mismatch is
// not an error — see ValidationResult.
var (
	// ErrTransport covers failures where the outbound call to the gateway
	// could not complete: network errors, context cancellation, an open
	// circuit breaker, or a 5xx from the gateway. The only kind where a
	// caller might reasonably try again.
	ErrTransport = errors.New("esewa: gateway transport failure")

	// ErrUnexpectedStatus means the gateway answered, but the final
	// response after redirects was not 200.
	ErrUnexpectedStatus = errors.New("esewa: unexpected gateway response status")

	// ErrEncoding means a callback blob was not valid padded base64 or did
	// not decode to UTF-8 text.
	ErrEncoding = errors.New("esewa: callback blob encoding invalid")

	// ErrMalformed means a callback blob decoded cleanly but the payload
	// does not match the expected response schema.
	ErrMalformed = errors.New("esewa: callback payload malformed")
)
