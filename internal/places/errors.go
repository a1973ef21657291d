package places

import "errors"

var (
	// ErrPlacesUnavailable indicates the places API could not be reached or
	// answered with a failure status.
	ErrPlacesUnavailable = errors.New("places service unavailable")

	// ErrTimeout indicates a lookup exceeded its deadline.
	ErrTimeout = errors.New("places request timed out")

	// ErrCircuitOpen indicates the breaker is rejecting calls.
	ErrCircuitOpen = errors.New("places circuit open")

	// ErrNoResults indicates a geocode query matched nothing.
	ErrNoResults = errors.New("no places results")

	// ErrDisabled indicates the client was built with Enabled=false.
	ErrDisabled = errors.New("places lookups disabled")
)
