package errors

import "errors"

// This package defines a centralized set of sentinel errors for the application.
// Services wrap them with fmt.Errorf("%w: ...") and the API layer maps them to
// HTTP status codes with errors.Is, so no layer below the API knows about HTTP.

var (
	// ErrNotFound signifies that a requested resource could not be located.
	// This is typically mapped to a 404 Not Found HTTP status.
	ErrNotFound = errors.New("resource not found")

	// ErrValidation signifies that input data provided by a client failed
	// business rule validation.
	// This is typically mapped to a 400 Bad Request HTTP status.
	ErrValidation = errors.New("validation failed")

	// ErrConflict signifies that an operation conflicts with the current state
	// of a resource.
	// This is typically mapped to a 409 Conflict HTTP status.
	ErrConflict = errors.New("resource conflict")

	// ErrInternal signifies an unexpected error on the server.
	// This is typically mapped to a 500 Internal Server Error HTTP status.
	ErrInternal = errors.New("internal server error")

	// ErrConfigurationMissing is returned at startup when a required secret or
	// setting is absent. It is fatal.
	ErrConfigurationMissing = errors.New("configuration missing")

	// ErrUnauthorized signifies a missing or invalid bearer token.
	// This is mapped to a 401 Unauthorized HTTP status.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrRateLimited signifies that the upstream model gateway rejected the
	// request with a rate-limit status. Mapped to 429.
	ErrRateLimited = errors.New("rate limited")

	// ErrQuotaExceeded signifies that the upstream model gateway requires
	// payment before serving more requests. Mapped to 402.
	ErrQuotaExceeded = errors.New("quota exceeded")

	// ErrUpstream signifies any other non-success answer from the upstream
	// service. Details are logged, never returned to the client. Mapped to 500.
	ErrUpstream = errors.New("upstream failure")

	// ErrTimeout signifies that a bounded wait on the upstream service or on a
	// stream read expired. Mapped to 504.
	ErrTimeout = errors.New("timeout")

	// ErrStreamStart signifies that a chat stream could not be opened
	// (non-success status or no readable body).
	ErrStreamStart = errors.New("failed to start stream")

	// ErrParse signifies that a generated artifact could not be decoded into
	// its structured form.
	ErrParse = errors.New("failed to parse generated content")

	// ErrTurnInProgress is returned when a new chat turn is started while the
	// previous one is still streaming.
	ErrTurnInProgress = errors.New("a response is still streaming")
)
