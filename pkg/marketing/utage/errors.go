package utage

import "errors"

var (
	// ErrInvalidConfig is returned when the client configuration is incomplete
	ErrInvalidConfig = errors.New("invalid utage config")

	// ErrMissingAPIKey is returned when no API key is configured
	ErrMissingAPIKey = errors.New("utage api key not configured")

	// ErrMissingScenarioID is returned when no scenario ID is available for a call
	ErrMissingScenarioID = errors.New("utage scenario id not configured")

	// ErrNetworkError is returned when the API is unreachable
	ErrNetworkError = errors.New("utage network error")

	// ErrUnauthorized is returned when the API key is rejected
	ErrUnauthorized = errors.New("utage unauthorized: invalid api key")

	// ErrRequestFailed is returned on any other non-2xx response
	ErrRequestFailed = errors.New("utage request failed")
)
