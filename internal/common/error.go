// Package common defines shared sentinel errors used across the
// contactbook server layers. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal      = errors.New("internal error")
	ErrorUnauthorized  = errors.New("unauthorized")
	ErrorAlreadyExists = errors.New("already exists")

	// Login errors. Deliberately a single value for both "no such user"
	// and "wrong password".
	ErrorInvalidCredentials = errors.New("username or password wrong")
)
