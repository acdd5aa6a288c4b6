package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrMissingUsername indicates no account identifier is configured.
	ErrMissingUsername = errors.New("github username not configured")

	// ErrMissingToken indicates no access credential is configured.
	ErrMissingToken = errors.New("github token not configured")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrTemplateToken indicates the template file does not contain the
	// required placeholder token.
	ErrTemplateToken = errors.New("template missing placeholder token")
)
