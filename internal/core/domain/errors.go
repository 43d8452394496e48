package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// ErrMissingConfig indicates a required configuration value is absent.
	// Raised before any network call is attempted.
	ErrMissingConfig = errors.New("missing configuration")

	// ErrNoSeedKeywords indicates a research request without seed keywords.
	ErrNoSeedKeywords = errors.New("no seed keywords provided")

	// Authentication Errors.

	// ErrAuthRequired indicates an operation needs authentication but none
	// is configured.
	ErrAuthRequired = errors.New("authentication required")

	// ErrAuthInvalid indicates the authentication credentials are invalid.
	ErrAuthInvalid = errors.New("authentication invalid")

	// ErrTokenExchangeFailed indicates the authorization-code exchange did
	// not produce a usable token.
	ErrTokenExchangeFailed = errors.New("token exchange failed")

	// ErrRateLimited indicates the API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")
)
