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

	// ErrPermissionDenied indicates the principal lacks the administrator
	// capability required for a setup mutation. Surfaced verbatim to the
	// user; never retried.
	ErrPermissionDenied = errors.New("permission denied: administrator capability required")

	// ErrEmptyAddress indicates an empty email address where one is required.
	ErrEmptyAddress = errors.New("email address must not be empty")

	// ErrInvalidAddress indicates an email address that does not conform
	// to the mailbox address grammar. Wrapped errors echo the offending
	// address.
	ErrInvalidAddress = errors.New("invalid email address")

	// ErrRateLimited indicates a connector API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")
)
